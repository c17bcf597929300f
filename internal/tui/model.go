// Package tui implements the interactive component gallery: pick a component, cycle its
// axis values and modifiers, and watch the resolved class string and terminal preview
// update.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/clarivus/internal/components"
	"github.com/alexisbeaulieu97/clarivus/internal/variants"
)

const (
	previewLabel = "Button"
	previewIcon  = "★"
)

// Model is the Bubbletea state of the gallery.
type Model struct {
	catalog *variants.Catalog
	theme   components.Theme

	names     []string
	component int

	// Axis state of the current component. selected holds an index into each axis' values.
	axes     []variants.AxisInfo
	selected []int
	cursor   int

	disabled bool
	loading  bool
	icon     bool

	result variants.Result
	err    error

	spinner spinner.Model

	width    int
	quitting bool
}

// NewModel creates a gallery over catalog starting at component. An empty component
// starts at the first registered one.
func NewModel(catalog *variants.Catalog, component string, theme components.Theme) (Model, error) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		catalog: catalog,
		theme:   theme,
		names:   catalog.Names(),
		spinner: s,
	}

	if component != "" {
		if _, err := catalog.Table(component); err != nil {
			return Model{}, err
		}
		for i, name := range m.names {
			if name == component {
				m.component = i
			}
		}
	}

	m.selectComponent(m.component)
	return m, nil
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Component returns the name of the component on screen.
func (m Model) Component() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.component]
}

// Result returns the latest resolution.
func (m Model) Result() variants.Result {
	return m.result
}

// Err returns the latest resolution error, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) selectComponent(index int) {
	if len(m.names) == 0 {
		return
	}
	m.component = (index + len(m.names)) % len(m.names)
	m.cursor = 0

	table, err := m.catalog.Table(m.names[m.component])
	if err != nil {
		m.err = err
		return
	}
	m.axes = table.Axes()
	m.resetValues()
}

// resetValues puts every axis back on its default and clears the modifiers.
func (m *Model) resetValues() {
	m.selected = make([]int, len(m.axes))
	for i, axis := range m.axes {
		for j, value := range axis.Values {
			if value == axis.Default {
				m.selected[i] = j
			}
		}
	}
	m.disabled, m.loading, m.icon = false, false, false
	m.resolve()
}

func (m Model) config() variants.Config {
	values := make(map[string]string, len(m.axes))
	for i, axis := range m.axes {
		values[axis.Name] = axis.Values[m.selected[i]]
	}
	return variants.Config{
		Values:   values,
		Disabled: m.disabled,
		Loading:  m.loading,
		HasIcon:  m.icon,
	}
}

func (m *Model) resolve() {
	m.result, m.err = m.catalog.Resolve(m.Component(), m.config())
}

func (m Model) buttonProps() components.ButtonProps {
	props := components.ButtonProps{
		Variant:  components.ButtonVariant(m.result.Value("variant")),
		Size:     components.ButtonSize(m.result.Value("size")),
		Disabled: m.disabled,
		Loading:  m.loading,
		Label:    previewLabel,
	}
	if m.icon {
		props.Icon = previewIcon
	}
	return props
}
