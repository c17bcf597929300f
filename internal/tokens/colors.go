package tokens

// BaseShade is the canonical shade of every shaded palette.
const BaseShade = "500"

// Palette is a named color family. Shaded palettes carry a Scale keyed by shade;
// flat palettes carry a single value.
type Palette struct {
	name   string
	shades *Scale
	flat   string
}

// Name returns the palette name.
func (p Palette) Name() string {
	return p.name
}

// Flat reports whether the palette is a single value rather than a shade scale.
func (p Palette) Flat() bool {
	return p.shades == nil
}

// Shades returns the shade scale, or nil for flat palettes.
func (p Palette) Shades() *Scale {
	return p.shades
}

// Value returns the flat value, or the base shade for shaded palettes.
func (p Palette) Value() string {
	if p.shades == nil {
		return p.flat
	}
	value, _ := p.shades.Lookup(p.shades.Base())
	return value
}

func shadedPalette(name string, entries ...Entry) Palette {
	return Palette{name: name, shades: newScale(name, BaseShade, entries...)}
}

func flatPalette(name, value string) Palette {
	return Palette{name: name, flat: value}
}

func defaultPalettes() []Palette {
	return []Palette{
		shadedPalette("primary",
			Entry{"0", "#ebf2fe"},
			Entry{"100", "#d6e5fd"},
			Entry{"200", "#b5c3fd"},
			Entry{"300", "#8aabf9"},
			Entry{"400", "#5a8df7"},
			Entry{"500", "#2a6ff5"},
			Entry{"600", "#2461d9"},
			Entry{"700", "#1e53bd"},
			Entry{"800", "#1844a1"},
			Entry{"900", "#123685"},
		),
		shadedPalette("success",
			Entry{"0", "#e8fcf4"},
			Entry{"100", "#d1f9e9"},
			Entry{"200", "#a3f3d3"},
			Entry{"300", "#75edbd"},
			Entry{"400", "#47e7a7"},
			Entry{"500", "#28c76f"},
			Entry{"600", "#23b362"},
			Entry{"700", "#1e9f55"},
			Entry{"800", "#198b48"},
			Entry{"900", "#14773b"},
		),
		shadedPalette("error",
			Entry{"0", "#fdedef"},
			Entry{"100", "#fbdbe0"},
			Entry{"200", "#f7b7c1"},
			Entry{"300", "#f393a2"},
			Entry{"400", "#ef6f83"},
			Entry{"500", "#ea5455"},
			Entry{"600", "#d44c4d"},
			Entry{"700", "#be4445"},
			Entry{"800", "#a83c3d"},
			Entry{"900", "#923435"},
		),
		shadedPalette("warning",
			Entry{"0", "#fff5e6"},
			Entry{"100", "#ffebcc"},
			Entry{"200", "#ffd799"},
			Entry{"300", "#ffc366"},
			Entry{"400", "#ffaf33"},
			Entry{"500", "#ff9f43"},
			Entry{"600", "#e68f3c"},
			Entry{"700", "#cc7f35"},
			Entry{"800", "#b36f2e"},
			Entry{"900", "#996027"},
		),
		shadedPalette("gray",
			Entry{"0", "#ffffff"},
			Entry{"50", "#f8fafc"},
			Entry{"100", "#f1f5f9"},
			Entry{"200", "#e2e8f0"},
			Entry{"300", "#cbd5e1"},
			Entry{"400", "#94a3b8"},
			Entry{"500", "#64748b"},
			Entry{"600", "#475569"},
			Entry{"700", "#334155"},
			Entry{"800", "#1e293b"},
			Entry{"900", "#0f172a"},
			Entry{"950", "#020617"},
		),
		flatPalette("white", "#ffffff"),
		flatPalette("black", "#000000"),
	}
}
