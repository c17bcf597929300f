package variants

import (
	"fmt"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

// Catalog is an immutable set of component tables keyed by component name.
type Catalog struct {
	tables map[string]*Table
	order  []string
}

// NewCatalog registers tables in the given order. Component names must be unique.
func NewCatalog(tables ...*Table) (*Catalog, error) {
	c := &Catalog{tables: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		if err := c.register(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) register(t *Table) error {
	if t == nil {
		return clarivuserrors.NewValidationError("catalog", "cannot register a nil table", nil)
	}
	if _, exists := c.tables[t.component]; exists {
		return clarivuserrors.NewValidationError("catalog", fmt.Sprintf("component %q registered twice", t.component), nil)
	}
	c.tables[t.component] = t
	c.order = append(c.order, t.component)
	return nil
}

// With returns a new catalog holding the receiver's tables followed by tables. The
// receiver is left untouched.
func (c *Catalog) With(tables ...*Table) (*Catalog, error) {
	next := &Catalog{tables: make(map[string]*Table, len(c.tables)+len(tables))}
	for _, name := range c.order {
		if err := next.register(c.tables[name]); err != nil {
			return nil, err
		}
	}
	for _, t := range tables {
		if err := next.register(t); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// Table returns the table registered for component.
func (c *Catalog) Table(component string) (*Table, error) {
	t, ok := c.tables[component]
	if !ok {
		return nil, clarivuserrors.NewValidationError("component", fmt.Sprintf("unknown component %q", component), nil)
	}
	return t, nil
}

// Names lists registered components in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Resolve looks up component and resolves cfg against its table.
func (c *Catalog) Resolve(component string, cfg Config) (Result, error) {
	t, err := c.Table(component)
	if err != nil {
		return Result{}, err
	}
	return Resolve(t, cfg)
}
