package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clarivus/internal/tokens"
)

var (
	primaryColor = tokenColor("primary", "500")
	mutedColor   = tokenColor("gray", "400")
	textColor    = tokenColor("gray", "700")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(tokenColor("gray", "500")).MarginTop(1)

	cursorStyle   = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(tokenColor("white", "")).Background(primaryColor)
	valueStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	onStyle       = lipgloss.NewStyle().Foreground(tokenColor("success", "500"))
	offStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle    = lipgloss.NewStyle().Foreground(tokenColor("error", "500")).Bold(true)
	classStyle    = lipgloss.NewStyle().Foreground(textColor)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().Foreground(primaryColor)
)

// tokenColor panics on a missing token; every reference above is a built-in shade.
func tokenColor(scale, shade string) lipgloss.Color {
	value, err := tokens.Color(scale, shade)
	if err != nil {
		panic(err)
	}
	return lipgloss.Color(value)
}
