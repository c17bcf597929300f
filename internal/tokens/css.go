package tokens

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Variable is a single CSS custom property.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CSSOptions controls stylesheet generation.
type CSSOptions struct {
	// Prefix is inserted after the leading dashes: "ds" yields --ds-primary-500.
	Prefix string
	// Selector defaults to :root.
	Selector string
}

// cssKinds lists the scales exported as custom properties, in output order.
var cssKinds = []Kind{
	KindSpacing,
	KindBorderRadius,
	KindShadow,
	KindZIndex,
	KindContainer,
	KindBreakpoint,
	KindFontFamily,
	KindFontSize,
	KindFontWeight,
	KindLineHeight,
	KindLetterSpacing,
}

// Variables returns the registry as CSS custom properties: every palette first, then the
// scales in cssKinds order.
func (r *Registry) Variables(prefix string) []Variable {
	stem := "--"
	if p := strings.Trim(strings.TrimSpace(prefix), "-"); p != "" {
		stem = "--" + p + "-"
	}

	var vars []Variable
	for _, palette := range r.Palettes() {
		if palette.Flat() {
			vars = append(vars, Variable{Name: stem + palette.Name(), Value: palette.Value()})
			continue
		}
		for _, entry := range palette.Shades().Entries() {
			vars = append(vars, Variable{
				Name:  fmt.Sprintf("%s%s-%s", stem, palette.Name(), entry.Key),
				Value: entry.Value,
			})
		}
	}

	for _, kind := range cssKinds {
		scale, ok := r.scales[kind]
		if !ok {
			continue
		}
		for _, entry := range scale.Entries() {
			vars = append(vars, Variable{
				Name:  fmt.Sprintf("%s%s-%s", stem, kind, entry.Key),
				Value: entry.Value,
			})
		}
	}
	return vars
}

// WriteCSS renders the registry as a stylesheet declaring every variable on one selector.
func (r *Registry) WriteCSS(w io.Writer, opts CSSOptions) error {
	selector := strings.TrimSpace(opts.Selector)
	if selector == "" {
		selector = ":root"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* clarivus design tokens v%s */\n", r.version)
	fmt.Fprintf(bw, "%s {\n", selector)
	for _, v := range r.Variables(opts.Prefix) {
		fmt.Fprintf(bw, "  %s: %s;\n", v.Name, v.Value)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
