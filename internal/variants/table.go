// Package variants maps a component's declared configuration to an ordered, de-duplicated
// list of presentation class tokens.
//
// A Table is the declarative description of one component: base tokens, ordered axes
// (variant, size, ...) with per-value tokens and a default, compound rules that apply when
// several axis values co-occur, and the modifier tokens unioned in for the disabled and
// loading states. Tables are validated on construction and never mutated afterwards.
package variants

import (
	"fmt"
	"strings"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

// ValueSpec declares the tokens of one axis value. Classes is whitespace separated.
type ValueSpec struct {
	Value   string
	Classes string
}

// AxisSpec declares one dimension of variation.
type AxisSpec struct {
	Name    string
	Default string
	Values  []ValueSpec
}

// CompoundSpec declares tokens applied only when every When pair matches the resolved
// axis values.
type CompoundSpec struct {
	When    map[string]string
	Classes string
}

// TableSpec is the declarative input to NewTable.
type TableSpec struct {
	Component string
	Base      string
	Axes      []AxisSpec
	Compounds []CompoundSpec
	Disabled  string
	Loading   string
}

type axis struct {
	name   string
	def    string
	order  []string
	values map[string][]string
}

type compound struct {
	when    []Selection
	classes []string
}

// Table is the validated, immutable variant table of one component.
type Table struct {
	component string
	base      []string
	axes      []axis
	axisIndex map[string]int
	compounds []compound
	disabled  []string
	loading   []string
}

// AxisInfo describes an axis for enumeration.
type AxisInfo struct {
	Name    string   `json:"name"`
	Default string   `json:"default"`
	Values  []string `json:"values"`
}

// NewTable validates spec and builds a Table.
func NewTable(spec TableSpec) (*Table, error) {
	component := strings.TrimSpace(spec.Component)
	if component == "" {
		return nil, clarivuserrors.NewValidationError("component", "component name is required", nil)
	}

	t := &Table{
		component: component,
		base:      splitClasses(spec.Base),
		axisIndex: make(map[string]int, len(spec.Axes)),
		disabled:  splitClasses(spec.Disabled),
		loading:   splitClasses(spec.Loading),
	}

	for i, as := range spec.Axes {
		field := fmt.Sprintf("%s.axes[%d]", component, i)
		a, err := buildAxis(field, as)
		if err != nil {
			return nil, err
		}
		if _, exists := t.axisIndex[a.name]; exists {
			return nil, clarivuserrors.NewValidationError(field, fmt.Sprintf("duplicate axis %q", a.name), nil)
		}
		t.axisIndex[a.name] = len(t.axes)
		t.axes = append(t.axes, a)
	}

	for i, cs := range spec.Compounds {
		field := fmt.Sprintf("%s.compounds[%d]", component, i)
		c, err := t.buildCompound(field, cs)
		if err != nil {
			return nil, err
		}
		t.compounds = append(t.compounds, c)
	}

	return t, nil
}

// MustTable is like NewTable but panics on invalid specs. It is meant for tables declared
// as package-level values.
func MustTable(spec TableSpec) *Table {
	t, err := NewTable(spec)
	if err != nil {
		panic(err)
	}
	return t
}

func buildAxis(field string, spec AxisSpec) (axis, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return axis{}, clarivuserrors.NewValidationError(field, "axis name is required", nil)
	}
	if len(spec.Values) == 0 {
		return axis{}, clarivuserrors.NewValidationError(field, fmt.Sprintf("axis %q declares no values", name), nil)
	}

	a := axis{
		name:   name,
		def:    strings.TrimSpace(spec.Default),
		order:  make([]string, 0, len(spec.Values)),
		values: make(map[string][]string, len(spec.Values)),
	}
	for _, vs := range spec.Values {
		value := strings.TrimSpace(vs.Value)
		if value == "" {
			return axis{}, clarivuserrors.NewValidationError(field, fmt.Sprintf("axis %q has an empty value name", name), nil)
		}
		if _, exists := a.values[value]; exists {
			return axis{}, clarivuserrors.NewValidationError(field, fmt.Sprintf("axis %q declares value %q twice", name, value), nil)
		}
		a.order = append(a.order, value)
		a.values[value] = splitClasses(vs.Classes)
	}

	if _, ok := a.values[a.def]; !ok {
		return axis{}, clarivuserrors.NewValidationError(field, fmt.Sprintf("default %q is not a value of axis %q", a.def, name), nil)
	}
	return a, nil
}

func (t *Table) buildCompound(field string, spec CompoundSpec) (compound, error) {
	if len(spec.When) == 0 {
		return compound{}, clarivuserrors.NewValidationError(field, "compound rule needs at least one condition", nil)
	}

	c := compound{classes: splitClasses(spec.Classes)}
	// Conditions follow axis declaration order so rules read the same way every time.
	for _, a := range t.axes {
		value, ok := spec.When[a.name]
		if !ok {
			continue
		}
		if _, known := a.values[value]; !known {
			return compound{}, clarivuserrors.NewUnknownVariantValueError(t.component, a.name, value, a.order)
		}
		c.when = append(c.when, Selection{Axis: a.name, Value: value})
	}
	if len(c.when) != len(spec.When) {
		for name := range spec.When {
			if _, ok := t.axisIndex[name]; !ok {
				return compound{}, clarivuserrors.NewValidationError(field, fmt.Sprintf("unknown axis %q", name), nil)
			}
		}
	}
	return c, nil
}

// Component returns the component name.
func (t *Table) Component() string {
	return t.component
}

// Base returns a copy of the base tokens.
func (t *Table) Base() []string {
	return append([]string(nil), t.base...)
}

// Axes describes every axis in declaration order.
func (t *Table) Axes() []AxisInfo {
	infos := make([]AxisInfo, 0, len(t.axes))
	for _, a := range t.axes {
		infos = append(infos, AxisInfo{
			Name:    a.name,
			Default: a.def,
			Values:  append([]string(nil), a.order...),
		})
	}
	return infos
}

// Axis returns the description of a single axis.
func (t *Table) Axis(name string) (AxisInfo, bool) {
	i, ok := t.axisIndex[name]
	if !ok {
		return AxisInfo{}, false
	}
	a := t.axes[i]
	return AxisInfo{Name: a.name, Default: a.def, Values: append([]string(nil), a.order...)}, true
}

func splitClasses(classes string) []string {
	return strings.Fields(classes)
}
