package discovery

import (
	"strings"

	"ptd/internal/domain"
)

// Filter narrows a catalog by a case-sensitive substring.
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Apply keeps a suite when its identifier or at least one of its method
// names contains substring. A kept suite retains its full method list even
// when only some methods matched; downstream consumers rely on seeing the
// whole suite. An empty substring returns the catalog unchanged. The input
// catalog is never mutated, and applying the same filter twice yields the
// same result as applying it once.
func (f *Filter) Apply(catalog *domain.Catalog, substring string) *domain.Catalog {
	if substring == "" {
		return catalog
	}

	filtered := domain.NewCatalog()
	for _, suite := range catalog.Suites() {
		methods, ok := catalog.Methods(suite)
		if !ok {
			continue
		}
		if strings.Contains(suite, substring) {
			filtered.Set(suite, methods)
			continue
		}
		for _, method := range methods {
			if strings.Contains(method, substring) {
				filtered.Set(suite, methods)
				break
			}
		}
	}
	return filtered
}
