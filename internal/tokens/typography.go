package tokens

import "fmt"

func defaultFontFamilies() *Scale {
	return newScale(string(KindFontFamily), "primary",
		Entry{"primary", "'Rubik', -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Oxygen', 'Ubuntu', 'Cantarell', 'Fira Sans', 'Droid Sans', 'Helvetica Neue', sans-serif"},
		Entry{"mono", "'JetBrains Mono', 'SF Mono', Monaco, Inconsolata, 'Roboto Mono', 'Source Code Pro', monospace"},
		Entry{"sans", "ui-sans-serif, system-ui, sans-serif, 'Apple Color Emoji', 'Segoe UI Emoji', 'Segoe UI Symbol', 'Noto Color Emoji'"},
	)
}

func defaultFontSizes() *Scale {
	return newScale(string(KindFontSize), "base",
		Entry{"display-2xl", "4.5rem"},
		Entry{"display-xl", "3.75rem"},
		Entry{"display-lg", "3rem"},
		Entry{"display-md", "2.25rem"},
		Entry{"display-sm", "1.875rem"},
		Entry{"h1", "2.25rem"},
		Entry{"h2", "1.875rem"},
		Entry{"h3", "1.5rem"},
		Entry{"h4", "1.25rem"},
		Entry{"h5", "1.125rem"},
		Entry{"h6", "1rem"},
		Entry{"xl", "1.25rem"},
		Entry{"lg", "1.125rem"},
		Entry{"base", "1rem"},
		Entry{"md", "1rem"},
		Entry{"sm", "0.875rem"},
		Entry{"xs", "0.75rem"},
		Entry{"button", "1rem"},
		Entry{"label", "0.875rem"},
		Entry{"caption", "0.75rem"},
		Entry{"small", "0.875rem"},
		Entry{"table-header", "0.875rem"},
	)
}

func defaultFontWeights() *Scale {
	return newScale(string(KindFontWeight), "regular",
		Entry{"light", "300"},
		Entry{"regular", "400"},
		Entry{"normal", "400"},
		Entry{"medium", "500"},
		Entry{"semibold", "600"},
		Entry{"bold", "700"},
		Entry{"extrabold", "800"},
		Entry{"black", "900"},
	)
}

func defaultLineHeights() *Scale {
	return newScale(string(KindLineHeight), "normal",
		Entry{"none", "1"},
		Entry{"tight", "1.25"},
		Entry{"snug", "1.375"},
		Entry{"normal", "1.5"},
		Entry{"relaxed", "1.625"},
		Entry{"loose", "2"},
		Entry{"h1", "1.2"},
		Entry{"h2", "1.25"},
		Entry{"h3", "1.3"},
		Entry{"h4", "1.35"},
		Entry{"h5", "1.4"},
		Entry{"h6", "1.45"},
		Entry{"body", "1.5"},
		Entry{"caption", "1.4"},
	)
}

func defaultLetterSpacings() *Scale {
	return newScale(string(KindLetterSpacing), "normal",
		Entry{"tighter", "-0.05em"},
		Entry{"tight", "-0.025em"},
		Entry{"normal", "0em"},
		Entry{"wide", "0.025em"},
		Entry{"wider", "0.05em"},
		Entry{"widest", "0.1em"},
	)
}

// TextStyle is a named bundle of typography keys, one per scale.
type TextStyle struct {
	Name          string
	FontSize      string
	FontWeight    string
	LineHeight    string
	LetterSpacing string
}

// ResolvedTextStyle carries the primitive values a TextStyle points at.
type ResolvedTextStyle struct {
	Name          string `json:"name"`
	FontSize      string `json:"fontSize"`
	FontWeight    string `json:"fontWeight"`
	LineHeight    string `json:"lineHeight"`
	LetterSpacing string `json:"letterSpacing"`
}

var defaultTextStyles = []TextStyle{
	{Name: "display-2xl", FontSize: "display-2xl", FontWeight: "bold", LineHeight: "tight", LetterSpacing: "tight"},
	{Name: "display-xl", FontSize: "display-xl", FontWeight: "bold", LineHeight: "tight", LetterSpacing: "tight"},
	{Name: "display-lg", FontSize: "display-lg", FontWeight: "bold", LineHeight: "snug", LetterSpacing: "normal"},
	{Name: "h1", FontSize: "h1", FontWeight: "bold", LineHeight: "h1", LetterSpacing: "normal"},
	{Name: "h2", FontSize: "h2", FontWeight: "semibold", LineHeight: "h2", LetterSpacing: "normal"},
	{Name: "h3", FontSize: "h3", FontWeight: "semibold", LineHeight: "h3", LetterSpacing: "normal"},
	{Name: "h4", FontSize: "h4", FontWeight: "medium", LineHeight: "h4", LetterSpacing: "normal"},
	{Name: "body-lg", FontSize: "lg", FontWeight: "regular", LineHeight: "body", LetterSpacing: "normal"},
	{Name: "body-md", FontSize: "base", FontWeight: "regular", LineHeight: "body", LetterSpacing: "normal"},
	{Name: "body-sm", FontSize: "sm", FontWeight: "regular", LineHeight: "body", LetterSpacing: "normal"},
	{Name: "button", FontSize: "button", FontWeight: "medium", LineHeight: "none", LetterSpacing: "wide"},
	{Name: "label", FontSize: "label", FontWeight: "medium", LineHeight: "normal", LetterSpacing: "normal"},
	{Name: "caption", FontSize: "caption", FontWeight: "regular", LineHeight: "caption", LetterSpacing: "normal"},
}

type typographyScales struct {
	size          *Scale
	weight        *Scale
	lineHeight    *Scale
	letterSpacing *Scale
}

func (t typographyScales) resolve(style TextStyle) (ResolvedTextStyle, error) {
	resolved := ResolvedTextStyle{Name: style.Name}
	var err error
	if resolved.FontSize, err = t.size.Get(style.FontSize); err != nil {
		return ResolvedTextStyle{}, err
	}
	if resolved.FontWeight, err = t.weight.Get(style.FontWeight); err != nil {
		return ResolvedTextStyle{}, err
	}
	if resolved.LineHeight, err = t.lineHeight.Get(style.LineHeight); err != nil {
		return ResolvedTextStyle{}, err
	}
	if resolved.LetterSpacing, err = t.letterSpacing.Get(style.LetterSpacing); err != nil {
		return ResolvedTextStyle{}, err
	}
	return resolved, nil
}

func mustResolveTextStyles(t typographyScales, styles []TextStyle) map[string]ResolvedTextStyle {
	resolved := make(map[string]ResolvedTextStyle, len(styles))
	for _, style := range styles {
		if _, exists := resolved[style.Name]; exists {
			panic(fmt.Sprintf("tokens: duplicate text style %q", style.Name))
		}
		value, err := t.resolve(style)
		if err != nil {
			panic(fmt.Sprintf("tokens: text style %q: %v", style.Name, err))
		}
		resolved[style.Name] = value
	}
	return resolved
}
