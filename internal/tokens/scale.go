package tokens

import (
	"fmt"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

// Kind names a token scale. It doubles as the CSS variable stem and the kind reported by
// UnknownTokenError.
type Kind string

const (
	KindColor            Kind = "color"
	KindSpacing          Kind = "spacing"
	KindBorderRadius     Kind = "radius"
	KindShadow           Kind = "shadow"
	KindZIndex           Kind = "z-index"
	KindContainer        Kind = "container"
	KindBreakpoint       Kind = "breakpoint"
	KindFontFamily       Kind = "font-family"
	KindFontSize         Kind = "font-size"
	KindFontWeight       Kind = "font-weight"
	KindLineHeight       Kind = "line-height"
	KindLetterSpacing    Kind = "letter-spacing"
	KindTextStyle        Kind = "text-style"
	KindComponentSpacing Kind = "component-spacing"
)

// Entry is a single key/value pair used to declare a scale.
type Entry struct {
	Key   string
	Value string
}

// Scale is an ordered, read-only mapping from a step or shade key to a primitive value.
type Scale struct {
	name   string
	base   string
	keys   []string
	values map[string]string
}

// newScale builds a scale from entries in declaration order. Duplicate keys, empty
// values or a base key that is not declared are programming errors in the static tables.
func newScale(name, base string, entries ...Entry) *Scale {
	s := &Scale{
		name:   name,
		base:   base,
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]string, len(entries)),
	}
	for _, entry := range entries {
		if _, exists := s.values[entry.Key]; exists {
			panic(fmt.Sprintf("tokens: duplicate key %q in scale %q", entry.Key, name))
		}
		if entry.Value == "" {
			panic(fmt.Sprintf("tokens: empty value for key %q in scale %q", entry.Key, name))
		}
		s.keys = append(s.keys, entry.Key)
		s.values[entry.Key] = entry.Value
	}
	if _, ok := s.values[base]; !ok {
		panic(fmt.Sprintf("tokens: base key %q missing from scale %q", base, name))
	}
	return s
}

// Name returns the scale name.
func (s *Scale) Name() string {
	return s.name
}

// Base returns the canonical base key of the scale.
func (s *Scale) Base() string {
	return s.base
}

// Keys returns the declared keys in declaration order.
func (s *Scale) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len reports the number of entries.
func (s *Scale) Len() int {
	return len(s.keys)
}

// Lookup returns the value registered for key.
func (s *Scale) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Get returns the value registered for key or an UnknownTokenError.
func (s *Scale) Get(key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", clarivuserrors.NewUnknownTokenError(s.name, key)
	}
	return value, nil
}

// Entries returns a copy of the scale in declaration order.
func (s *Scale) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		entries = append(entries, Entry{Key: key, Value: s.values[key]})
	}
	return entries
}
