package variants

import (
	"fmt"
	"sort"
	"strings"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

// Config is the caller's choice for one render.
type Config struct {
	// Values maps axis name to value. Missing or empty entries fall back to the axis default.
	Values map[string]string
	// Disabled and Loading union the table's modifier tokens and block interaction.
	Disabled bool
	Loading  bool
	// HasIcon reports that the caller supplied leading icon content.
	HasIcon bool
	// Class holds free-form override tokens appended after everything else.
	Class string
}

// Selection is the value an axis resolved to.
type Selection struct {
	Axis  string `json:"axis"`
	Value string `json:"value"`
}

// Result is a resolved class set plus the state flags a render layer needs.
type Result struct {
	Component string      `json:"component"`
	Classes   []string    `json:"classes"`
	Selected  []Selection `json:"selected"`

	// InteractionBlocked is Disabled || Loading; a render layer drops click handling.
	InteractionBlocked bool `json:"interactionBlocked"`
	Loading            bool `json:"loading"`
	// ShowSpinner and ShowIcon encode the precedence loading > icon.
	ShowSpinner bool `json:"showSpinner"`
	ShowIcon    bool `json:"showIcon"`
}

// String joins the classes with single spaces.
func (r Result) String() string {
	return strings.Join(r.Classes, " ")
}

// Value returns the value an axis resolved to.
func (r Result) Value(axis string) string {
	for _, s := range r.Selected {
		if s.Axis == axis {
			return s.Value
		}
	}
	return ""
}

// Resolve computes the class set for cfg. Tokens are ordered base, axes in declaration
// order, matching compound rules, disabled then loading modifiers, caller overrides; a
// token seen twice keeps its first position. Resolve has no side effects and allocates a
// fresh Result on every call.
func Resolve(t *Table, cfg Config) (Result, error) {
	if t == nil {
		return Result{}, clarivuserrors.NewValidationError("table", "variant table is nil", nil)
	}
	if err := t.checkAxes(cfg.Values); err != nil {
		return Result{}, err
	}

	set := newClassSet(len(t.base) + 8)
	set.add(t.base...)

	selected := make([]Selection, 0, len(t.axes))
	for _, a := range t.axes {
		value := strings.TrimSpace(cfg.Values[a.name])
		if value == "" {
			value = a.def
		}
		tokens, ok := a.values[value]
		if !ok {
			return Result{}, clarivuserrors.NewUnknownVariantValueError(t.component, a.name, value, a.order)
		}
		set.add(tokens...)
		selected = append(selected, Selection{Axis: a.name, Value: value})
	}

	for _, c := range t.compounds {
		if c.matches(selected) {
			set.add(c.classes...)
		}
	}

	if cfg.Disabled {
		set.add(t.disabled...)
	}
	if cfg.Loading {
		set.add(t.loading...)
	}
	set.add(splitClasses(cfg.Class)...)

	return Result{
		Component:          t.component,
		Classes:            set.tokens,
		Selected:           selected,
		InteractionBlocked: cfg.Disabled || cfg.Loading,
		Loading:            cfg.Loading,
		ShowSpinner:        cfg.Loading,
		ShowIcon:           cfg.HasIcon && !cfg.Loading,
	}, nil
}

// checkAxes rejects axis names the table does not declare. Names are checked in sorted
// order so the reported error is stable.
func (t *Table) checkAxes(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := t.axisIndex[name]; !ok {
			return clarivuserrors.NewValidationError(t.component, fmt.Sprintf("unknown axis %q", name), nil)
		}
	}
	return nil
}

func (c compound) matches(selected []Selection) bool {
	for _, cond := range c.when {
		matched := false
		for _, s := range selected {
			if s.Axis == cond.Axis {
				matched = s.Value == cond.Value
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

type classSet struct {
	seen   map[string]struct{}
	tokens []string
}

func newClassSet(capacity int) *classSet {
	return &classSet{
		seen:   make(map[string]struct{}, capacity),
		tokens: make([]string, 0, capacity),
	}
}

func (s *classSet) add(tokens ...string) {
	for _, token := range tokens {
		if _, dup := s.seen[token]; dup {
			continue
		}
		s.seen[token] = struct{}{}
		s.tokens = append(s.tokens, token)
	}
}
