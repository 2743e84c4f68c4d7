package discovery

import (
	"ptd/internal/domain"
)

// Builder composes the scanner, resolver and extractor into a test catalog.
type Builder struct {
	scanner   *Scanner
	resolver  *Resolver
	extractor *Extractor
}

// NewBuilder creates a new Builder
func NewBuilder(scanner *Scanner, resolver *Resolver, extractor *Extractor) *Builder {
	return &Builder{
		scanner:   scanner,
		resolver:  resolver,
		extractor: extractor,
	}
}

// Build scans root and groups the extracted methods by suite identifier.
// Files with no test methods are omitted. When two files resolve to the
// same identifier the later one wins; lists are never merged.
func (b *Builder) Build(root string) (*domain.Catalog, error) {
	files, err := b.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	catalog := domain.NewCatalog()
	for _, file := range files {
		methods := b.extractor.Extract(file.Content)
		if len(methods) == 0 {
			continue
		}
		catalog.Set(b.resolver.Resolve(file.RelPath), methods)
	}
	return catalog, nil
}
