// Package components holds the built-in component tables and a terminal preview adapter
// that draws resolved components with lipgloss using colors from the token registry.
package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clarivus/internal/tokens"
)

// TokenRef points at a palette shade. An empty Shade selects the palette's base shade.
type TokenRef struct {
	Scale string
	Shade string
}

func ref(scale, shade string) TokenRef {
	return TokenRef{Scale: scale, Shade: shade}
}

// IsZero reports whether the reference is unset.
func (r TokenRef) IsZero() bool {
	return r.Scale == ""
}

// ButtonSurface describes how a button variant is drawn in a terminal.
type ButtonSurface struct {
	Background TokenRef
	Foreground TokenRef
	Border     TokenRef
	Underline  bool
}

// Theme maps component variants onto token colors for terminal previews. It reads the
// registry but never changes it.
type Theme struct {
	registry *tokens.Registry
	surfaces map[ButtonVariant]ButtonSurface
	padding  map[ButtonSize]string
	spinner  string
}

// NewTheme builds a preview theme over reg.
func NewTheme(reg *tokens.Registry) Theme {
	return Theme{
		registry: reg,
		surfaces: defaultButtonSurfaces(),
		padding:  defaultButtonPadding(),
		spinner:  "◌",
	}
}

// DefaultTheme returns a preview theme over the default token registry.
func DefaultTheme() Theme {
	return NewTheme(tokens.Default())
}

// Surfaces mirror the background, text and border tokens of the button table.
func defaultButtonSurfaces() map[ButtonVariant]ButtonSurface {
	return map[ButtonVariant]ButtonSurface{
		ButtonVariantPrimary:   {Background: ref("primary", "500"), Foreground: ref("white", "")},
		ButtonVariantSecondary: {Foreground: ref("primary", "500"), Border: ref("primary", "500")},
		ButtonVariantAccent:    {Background: ref("primary", "700"), Foreground: ref("white", "")},
		ButtonVariantSuccess:   {Background: ref("success", "500"), Foreground: ref("white", "")},
		ButtonVariantWarning:   {Background: ref("warning", "500"), Foreground: ref("gray", "900")},
		ButtonVariantError:     {Background: ref("error", "500"), Foreground: ref("white", "")},
		ButtonVariantGhost:     {Foreground: ref("primary", "500")},
		ButtonVariantOutline:   {Foreground: ref("gray", "700"), Border: ref("gray", "300")},
		ButtonVariantLink:      {Foreground: ref("primary", "500"), Underline: true},
	}
}

// Horizontal padding follows the px-* step of each size.
func defaultButtonPadding() map[ButtonSize]string {
	return map[ButtonSize]string{
		ButtonSizeSmall:      "3",
		ButtonSizeMedium:     "4",
		ButtonSizeLarge:      "6",
		ButtonSizeExtraLarge: "8",
		ButtonSizeIcon:       "2",
	}
}

// Registry returns the token registry backing the theme.
func (t Theme) Registry() *tokens.Registry {
	return t.registry
}

// Color resolves a token reference to a lipgloss color.
func (t Theme) Color(r TokenRef) (lipgloss.Color, error) {
	value, err := t.registry.Color(r.Scale, r.Shade)
	if err != nil {
		return "", err
	}
	return lipgloss.Color(value), nil
}

// Surface returns the preview surface of a variant.
func (t Theme) Surface(variant ButtonVariant) (ButtonSurface, bool) {
	s, ok := t.surfaces[variant]
	return s, ok
}

// paddingCells converts a spacing step to terminal cells, one cell per 8px.
func (t Theme) paddingCells(size ButtonSize) (int, error) {
	step, ok := t.padding[size]
	if !ok {
		return 0, fmt.Errorf("no preview padding for size %q", size)
	}
	value, err := t.registry.Spacing(step)
	if err != nil {
		return 0, err
	}
	px, err := strconv.Atoi(strings.TrimSuffix(value, "px"))
	if err != nil {
		return 0, fmt.Errorf("spacing step %s: %w", step, err)
	}
	return px / 8, nil
}

// ButtonStyle builds the lipgloss style of a resolved button plan.
func (t Theme) ButtonStyle(plan ButtonPlan) (lipgloss.Style, error) {
	surface, ok := t.Surface(plan.Variant())
	if !ok {
		return lipgloss.Style{}, fmt.Errorf("no preview surface for variant %q", plan.Variant())
	}
	cells, err := t.paddingCells(plan.Size())
	if err != nil {
		return lipgloss.Style{}, err
	}

	style := lipgloss.NewStyle().PaddingLeft(cells).PaddingRight(cells)

	if !surface.Background.IsZero() {
		color, err := t.Color(surface.Background)
		if err != nil {
			return lipgloss.Style{}, err
		}
		style = style.Background(color)
	}
	if !surface.Foreground.IsZero() {
		color, err := t.Color(surface.Foreground)
		if err != nil {
			return lipgloss.Style{}, err
		}
		style = style.Foreground(color)
	}
	if !surface.Border.IsZero() {
		color, err := t.Color(surface.Border)
		if err != nil {
			return lipgloss.Style{}, err
		}
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(color)
	}
	if surface.Underline {
		style = style.Underline(true)
	}
	if plan.Disabled {
		style = style.Faint(true)
	}
	return style, nil
}

// RenderButton draws a plan. While loading the spinner frame replaces the icon; an empty
// frame falls back to the theme's static glyph.
func (t Theme) RenderButton(plan ButtonPlan, spinnerFrame string) (string, error) {
	style, err := t.ButtonStyle(plan)
	if err != nil {
		return "", err
	}

	var parts []string
	switch {
	case plan.Spinner:
		if spinnerFrame == "" {
			spinnerFrame = t.spinner
		}
		parts = append(parts, spinnerFrame)
	case plan.Icon != "":
		parts = append(parts, plan.Icon)
	}
	if plan.Label != "" {
		parts = append(parts, plan.Label)
	}
	return style.Render(strings.Join(parts, " ")), nil
}
