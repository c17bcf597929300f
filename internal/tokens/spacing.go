package tokens

import "fmt"

// Numeric steps follow a 4px base unit; the named aliases map onto those steps.
func defaultSpacing() *Scale {
	return newScale(string(KindSpacing), "1",
		Entry{"0", "0px"},
		Entry{"1", "4px"},
		Entry{"2", "8px"},
		Entry{"3", "12px"},
		Entry{"4", "16px"},
		Entry{"5", "20px"},
		Entry{"6", "24px"},
		Entry{"7", "28px"},
		Entry{"8", "32px"},
		Entry{"9", "36px"},
		Entry{"10", "40px"},
		Entry{"11", "44px"},
		Entry{"12", "48px"},
		Entry{"14", "56px"},
		Entry{"16", "64px"},
		Entry{"18", "72px"},
		Entry{"20", "80px"},
		Entry{"24", "96px"},
		Entry{"28", "112px"},
		Entry{"32", "128px"},
		Entry{"36", "144px"},
		Entry{"40", "160px"},
		Entry{"44", "176px"},
		Entry{"48", "192px"},
		Entry{"52", "208px"},
		Entry{"56", "224px"},
		Entry{"60", "240px"},
		Entry{"64", "256px"},
		Entry{"72", "288px"},
		Entry{"80", "320px"},
		Entry{"96", "384px"},
		Entry{"xs", "4px"},
		Entry{"sm", "8px"},
		Entry{"md", "16px"},
		Entry{"lg", "24px"},
		Entry{"xl", "32px"},
		Entry{"2xl", "48px"},
		Entry{"3xl", "64px"},
		Entry{"4xl", "80px"},
		Entry{"5xl", "96px"},
	)
}

func defaultBorderRadius() *Scale {
	return newScale(string(KindBorderRadius), "md",
		Entry{"none", "0px"},
		Entry{"sm", "6px"},
		Entry{"md", "8px"},
		Entry{"lg", "12px"},
		Entry{"xl", "16px"},
		Entry{"2xl", "20px"},
		Entry{"3xl", "24px"},
		Entry{"full", "9999px"},
	)
}

func defaultShadows() *Scale {
	return newScale(string(KindShadow), "md",
		Entry{"none", "none"},
		Entry{"xs", "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
		Entry{"sm", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"},
		Entry{"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"},
		Entry{"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"},
		Entry{"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"},
		Entry{"2xl", "0 25px 50px -12px rgb(0 0 0 / 0.25)"},
		Entry{"inner", "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)"},
	)
}

// Z-index values are kept as CSS strings so "auto" sits beside the numeric layers.
func defaultZIndex() *Scale {
	return newScale(string(KindZIndex), "base",
		Entry{"hide", "-1"},
		Entry{"auto", "auto"},
		Entry{"base", "0"},
		Entry{"docked", "10"},
		Entry{"dropdown", "1000"},
		Entry{"sticky", "1100"},
		Entry{"banner", "1200"},
		Entry{"overlay", "1300"},
		Entry{"modal", "1400"},
		Entry{"popover", "1500"},
		Entry{"skipLink", "1600"},
		Entry{"toast", "1700"},
		Entry{"tooltip", "1800"},
	)
}

func defaultContainers() *Scale {
	return newScale(string(KindContainer), "md",
		Entry{"xs", "20rem"},
		Entry{"sm", "24rem"},
		Entry{"md", "28rem"},
		Entry{"lg", "32rem"},
		Entry{"xl", "36rem"},
		Entry{"2xl", "42rem"},
		Entry{"3xl", "48rem"},
		Entry{"4xl", "56rem"},
		Entry{"5xl", "64rem"},
		Entry{"6xl", "72rem"},
		Entry{"7xl", "80rem"},
		Entry{"full", "100%"},
	)
}

func defaultBreakpoints() *Scale {
	return newScale(string(KindBreakpoint), "xs",
		Entry{"xs", "0px"},
		Entry{"sm", "640px"},
		Entry{"md", "768px"},
		Entry{"lg", "1024px"},
		Entry{"xl", "1280px"},
		Entry{"2xl", "1536px"},
	)
}

// componentSpacingPattern maps a component property to a spacing step.
type componentSpacingPattern struct {
	component string
	property  string
	step      string
}

var componentSpacingPatterns = []componentSpacingPattern{
	{"button", "paddingX", "4"},
	{"button", "paddingY", "2"},
	{"button", "gap", "2"},
	{"card", "padding", "6"},
	{"card", "gap", "4"},
	{"form", "gap", "4"},
	{"form", "labelGap", "1"},
	{"list", "gap", "2"},
	{"list", "itemPadding", "3"},
	{"section", "marginBottom", "8"},
	{"section", "gap", "6"},
}

func componentSpacingKey(component, property string) string {
	return fmt.Sprintf("%s.%s", component, property)
}

// defaultComponentSpacing resolves the patterns against the spacing scale so the derived
// table can never drift from its source steps.
func defaultComponentSpacing(spacing *Scale) *Scale {
	entries := make([]Entry, 0, len(componentSpacingPatterns))
	for _, pattern := range componentSpacingPatterns {
		value, ok := spacing.Lookup(pattern.step)
		if !ok {
			panic(fmt.Sprintf("tokens: component spacing %s.%s references unknown step %q", pattern.component, pattern.property, pattern.step))
		}
		entries = append(entries, Entry{Key: componentSpacingKey(pattern.component, pattern.property), Value: value})
	}
	return newScale(string(KindComponentSpacing), componentSpacingKey("button", "paddingX"), entries...)
}
