// Package tokens holds the design-token registry: color palettes, spacing, radii, shadows,
// z-index layers, containers, breakpoints and typography.
//
// Every table is built once when the package is initialised and is never mutated, so a
// Registry is safe for concurrent use without locking. Lookups of unregistered keys fail
// with the typed errors from pkg/errors instead of returning empty values.
package tokens

import (
	"strings"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

// Registry is an immutable collection of token scales.
type Registry struct {
	palettes     map[string]Palette
	paletteOrder []string

	scales     map[Kind]*Scale
	scaleOrder []Kind

	textStyles     map[string]ResolvedTextStyle
	textStyleOrder []string

	version string
}

var defaultRegistry = newDefaultRegistry()

// Default returns the process-wide token registry.
func Default() *Registry {
	return defaultRegistry
}

func newDefaultRegistry() *Registry {
	spacing := defaultSpacing()
	typography := typographyScales{
		size:          defaultFontSizes(),
		weight:        defaultFontWeights(),
		lineHeight:    defaultLineHeights(),
		letterSpacing: defaultLetterSpacings(),
	}

	r := &Registry{
		palettes: make(map[string]Palette),
		scales:   make(map[Kind]*Scale),
		version:  Version,
	}

	for _, palette := range defaultPalettes() {
		r.palettes[palette.Name()] = palette
		r.paletteOrder = append(r.paletteOrder, palette.Name())
	}

	for _, scale := range []*Scale{
		spacing,
		defaultBorderRadius(),
		defaultShadows(),
		defaultZIndex(),
		defaultContainers(),
		defaultBreakpoints(),
		defaultFontFamilies(),
		typography.size,
		typography.weight,
		typography.lineHeight,
		typography.letterSpacing,
		defaultComponentSpacing(spacing),
	} {
		kind := Kind(scale.Name())
		r.scales[kind] = scale
		r.scaleOrder = append(r.scaleOrder, kind)
	}

	r.textStyles = mustResolveTextStyles(typography, defaultTextStyles)
	for _, style := range defaultTextStyles {
		r.textStyleOrder = append(r.textStyleOrder, style.Name)
	}

	return r
}

// Color returns the value of a palette shade. An empty shade selects the base shade of a
// shaded palette; flat palettes ignore the shade and always return their value.
func (r *Registry) Color(scale, shade string) (string, error) {
	palette, ok := r.palettes[scale]
	if !ok {
		return "", clarivuserrors.NewUnknownScaleError(scale)
	}
	if palette.Flat() {
		return palette.flat, nil
	}
	shade = strings.TrimSpace(shade)
	if shade == "" {
		return palette.Value(), nil
	}
	value, ok := palette.shades.Lookup(shade)
	if !ok {
		return "", clarivuserrors.NewUnknownShadeError(scale, shade)
	}
	return value, nil
}

// Palette returns the named palette.
func (r *Registry) Palette(name string) (Palette, error) {
	palette, ok := r.palettes[name]
	if !ok {
		return Palette{}, clarivuserrors.NewUnknownScaleError(name)
	}
	return palette, nil
}

// Palettes returns every palette in declaration order.
func (r *Registry) Palettes() []Palette {
	palettes := make([]Palette, 0, len(r.paletteOrder))
	for _, name := range r.paletteOrder {
		palettes = append(palettes, r.palettes[name])
	}
	return palettes
}

// Scale returns the scale registered under kind. Colors and text styles are not plain
// scales; use Palette and TextStyle for those.
func (r *Registry) Scale(kind Kind) (*Scale, error) {
	scale, ok := r.scales[kind]
	if !ok {
		return nil, clarivuserrors.NewUnknownTokenError("scale", string(kind))
	}
	return scale, nil
}

// Scales returns every non-color scale in declaration order.
func (r *Registry) Scales() []*Scale {
	scales := make([]*Scale, 0, len(r.scaleOrder))
	for _, kind := range r.scaleOrder {
		scales = append(scales, r.scales[kind])
	}
	return scales
}

// Lookup returns the value stored under key in the scale of the given kind.
func (r *Registry) Lookup(kind Kind, key string) (string, error) {
	scale, err := r.Scale(kind)
	if err != nil {
		return "", err
	}
	return scale.Get(key)
}

func (r *Registry) Spacing(step string) (string, error) {
	return r.Lookup(KindSpacing, step)
}

func (r *Registry) BorderRadius(name string) (string, error) {
	return r.Lookup(KindBorderRadius, name)
}

func (r *Registry) Shadow(name string) (string, error) {
	return r.Lookup(KindShadow, name)
}

func (r *Registry) ZIndex(name string) (string, error) {
	return r.Lookup(KindZIndex, name)
}

func (r *Registry) Container(name string) (string, error) {
	return r.Lookup(KindContainer, name)
}

func (r *Registry) Breakpoint(name string) (string, error) {
	return r.Lookup(KindBreakpoint, name)
}

func (r *Registry) FontFamily(name string) (string, error) {
	return r.Lookup(KindFontFamily, name)
}

func (r *Registry) FontSize(name string) (string, error) {
	return r.Lookup(KindFontSize, name)
}

func (r *Registry) FontWeight(name string) (string, error) {
	return r.Lookup(KindFontWeight, name)
}

func (r *Registry) LineHeight(name string) (string, error) {
	return r.Lookup(KindLineHeight, name)
}

func (r *Registry) LetterSpacing(name string) (string, error) {
	return r.Lookup(KindLetterSpacing, name)
}

// ComponentSpacing returns the spacing value a component pattern uses for property,
// e.g. ("button", "paddingX").
func (r *Registry) ComponentSpacing(component, property string) (string, error) {
	return r.Lookup(KindComponentSpacing, componentSpacingKey(component, property))
}

// TextStyle returns the resolved values of a named text style.
func (r *Registry) TextStyle(name string) (ResolvedTextStyle, error) {
	style, ok := r.textStyles[name]
	if !ok {
		return ResolvedTextStyle{}, clarivuserrors.NewUnknownTokenError(string(KindTextStyle), name)
	}
	return style, nil
}

// TextStyleNames lists text styles in declaration order.
func (r *Registry) TextStyleNames() []string {
	return append([]string(nil), r.textStyleOrder...)
}

// Version returns the token set version.
func (r *Registry) Version() string {
	return r.version
}

// Package-level helpers delegate to the default registry.

func Color(scale, shade string) (string, error) { return defaultRegistry.Color(scale, shade) }

func Spacing(step string) (string, error) { return defaultRegistry.Spacing(step) }

func BorderRadius(name string) (string, error) { return defaultRegistry.BorderRadius(name) }

func Shadow(name string) (string, error) { return defaultRegistry.Shadow(name) }

func ZIndex(name string) (string, error) { return defaultRegistry.ZIndex(name) }
