package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clarivus/internal/components"
)

const defaultWidth = 80

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("Clarivus • %s", m.title())),
	}

	if len(m.axes) > 0 {
		sections = append(sections, sectionStyle.Render("Axes"), m.renderAxes())
	}
	sections = append(sections, sectionStyle.Render("Modifiers"), m.renderModifiers())

	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	} else {
		if preview := m.renderPreview(); preview != "" {
			sections = append(sections, sectionStyle.Render("Preview"), preview)
		}
		sections = append(sections, sectionStyle.Render("Classes"), m.renderClasses())
	}

	sections = append(sections, helpStyle.Render("tab component • ↑/↓ axis • ←/→ value • d disabled • s loading • i icon • r reset • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	name := m.Component()
	if name == "" {
		return "no components"
	}
	return fmt.Sprintf("%s (%d/%d)", name, m.component+1, len(m.names))
}

func (m Model) renderAxes() string {
	lines := make([]string, 0, len(m.axes))
	for i, axis := range m.axes {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("› ")
		}

		values := make([]string, 0, len(axis.Values))
		for j, value := range axis.Values {
			if j == m.selected[i] {
				values = append(values, selectedStyle.Render(" "+value+" "))
				continue
			}
			values = append(values, valueStyle.Render(" "+value+" "))
		}
		lines = append(lines, fmt.Sprintf("%s%-10s %s", marker, axis.Name, strings.Join(values, "")))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderModifiers() string {
	toggle := func(label string, on bool) string {
		if on {
			return onStyle.Render("● " + label)
		}
		return offStyle.Render("○ " + label)
	}
	return strings.Join([]string{
		toggle("disabled", m.disabled),
		toggle("loading", m.loading),
		toggle("icon", m.icon),
	}, "   ")
}

// renderPreview draws the button with the theme; other components have no terminal rendering.
func (m Model) renderPreview() string {
	if m.Component() != components.ButtonComponent {
		return ""
	}
	plan, err := components.ResolveButton(m.buttonProps())
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	out, err := m.theme.RenderButton(plan, m.spinner.View())
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return out
}

func (m Model) renderClasses() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	return classStyle.Width(width - 2).Render(m.result.String())
}
