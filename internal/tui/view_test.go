package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestViewShowsComponentState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Clarivus • button (1/2)")
	assert.Contains(t, view, "variant")
	assert.Contains(t, view, "Preview")
	assert.Contains(t, view, "Button")
	assert.Contains(t, view, "inline-flex")
	assert.Contains(t, view, "○ disabled")
}

func TestViewWithoutPreview(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyTab}, runes("d"))
	view := m.View()

	assert.Contains(t, view, "chip")
	assert.NotContains(t, view, "Preview")
	assert.Contains(t, view, "rounded-full")
	assert.Contains(t, view, "● disabled")
}

func TestViewPreviewShowsIcon(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(t), runes("i"))
	assert.Contains(t, m.View(), "★ Button")
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	t.Parallel()

	updated, _ := newTestModel(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Empty(t, updated.(Model).View())
}
