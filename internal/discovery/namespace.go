package discovery

import (
	"path"
	"strings"
)

// namespaceSeparator joins the segments of a suite identifier.
const namespaceSeparator = "."

// Resolver maps a relative file path to a namespaced suite identifier
// under a fixed root prefix.
type Resolver struct {
	prefix string
}

// NewResolver creates a Resolver rooted at the given prefix.
func NewResolver(prefix string) *Resolver {
	return &Resolver{prefix: prefix}
}

// Resolve converts a relative file path into a suite identifier: separators
// (forward or back slash) become the namespace separator, the file
// extension is stripped and the prefix is prepended. Pure and deterministic;
// the same path always yields the same identifier. A path with no
// separators maps to <prefix>.<basename>.
func (r *Resolver) Resolve(relPath string) string {
	p := strings.ReplaceAll(relPath, "\\", "/")
	p = strings.Trim(p, "/")
	p = strings.TrimSuffix(p, path.Ext(p))

	segments := []string{r.prefix}
	for _, segment := range strings.Split(p, "/") {
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return strings.Join(segments, namespaceSeparator)
}
