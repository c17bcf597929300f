package components

import "github.com/alexisbeaulieu97/clarivus/internal/variants"

// Catalog returns the built-in component tables followed by extra, typically tables
// loaded from YAML files.
func Catalog(extra ...*variants.Table) (*variants.Catalog, error) {
	return variants.NewCatalog(append([]*variants.Table{buttonTable}, extra...)...)
}
