package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/clarivus/internal/components"
	"github.com/alexisbeaulieu97/clarivus/internal/variants"
	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	chip := variants.MustTable(variants.TableSpec{
		Component: "chip",
		Base:      "rounded-full",
		Axes: []variants.AxisSpec{{
			Name:    "tone",
			Default: "neutral",
			Values:  []variants.ValueSpec{{Value: "neutral", Classes: "bg-gray-100"}, {Value: "info", Classes: "bg-primary-100"}},
		}},
	})
	catalog, err := components.Catalog(chip)
	require.NoError(t, err)

	m, err := NewModel(catalog, "", components.DefaultTheme())
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, key := range keys {
		updated, _ := m.Update(key)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsOnDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, "button", m.Component())
	require.NoError(t, m.Err())
	assert.Equal(t, "primary", m.Result().Value("variant"))
	assert.Equal(t, "md", m.Result().Value("size"))
	assert.NotNil(t, m.Init())
}

func TestNewModelUnknownComponent(t *testing.T) {
	t.Parallel()

	catalog, err := components.Catalog()
	require.NoError(t, err)

	_, err = NewModel(catalog, "carousel", components.DefaultTheme())
	var validationErr *clarivuserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateCyclesValues(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "secondary", m.Result().Value("variant"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "link", m.Result().Value("variant"), "values wrap around")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("l"))
	assert.Equal(t, "lg", m.Result().Value("size"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor, "cursor stops at the last axis")

	m = press(t, m, runes("r"))
	assert.Equal(t, "primary", m.Result().Value("variant"))
	assert.Equal(t, "md", m.Result().Value("size"))
}

func TestUpdateTogglesModifiers(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = press(t, m, runes("d"))
	assert.True(t, m.Result().InteractionBlocked)
	assert.Contains(t, m.Result().Classes, "aria-disabled:opacity-50")

	m = press(t, m, runes("d"), runes("i"))
	assert.False(t, m.Result().InteractionBlocked)
	assert.True(t, m.Result().ShowIcon)

	m = press(t, m, runes("s"))
	assert.True(t, m.Result().ShowSpinner)
	assert.False(t, m.Result().ShowIcon, "loading hides the icon")
}

func TestUpdateSwitchesComponents(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runes("d"), tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "chip", m.Component())
	assert.Equal(t, "neutral", m.Result().Value("tone"))
	assert.False(t, m.Result().InteractionBlocked, "switching resets modifiers")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "button", m.Component())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "chip", m.Component())
}

func TestUpdateHandlesTeaMessages(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, cmd := m.Update(spinner.TickMsg{})
	_, ok := updated.(Model)
	require.True(t, ok)
	assert.NotNil(t, cmd)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, updated.(Model).width)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(Model).Quitting())
}
