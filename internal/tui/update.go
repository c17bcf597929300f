package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.selectComponent(m.component + 1)
	case "shift+tab":
		m.selectComponent(m.component - 1)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.axes)-1 {
			m.cursor++
		}

	case "right", "l":
		m.cycle(1)
	case "left", "h":
		m.cycle(-1)

	case "d":
		m.disabled = !m.disabled
		m.resolve()
	case "s":
		m.loading = !m.loading
		m.resolve()
	case "i":
		m.icon = !m.icon
		m.resolve()

	case "r":
		m.resetValues()
	}

	return m, nil
}

// cycle moves the focused axis to the next or previous value, wrapping around.
func (m *Model) cycle(step int) {
	if len(m.axes) == 0 {
		return
	}
	n := len(m.axes[m.cursor].Values)
	m.selected[m.cursor] = (m.selected[m.cursor] + step + n) % n
	m.resolve()
}
