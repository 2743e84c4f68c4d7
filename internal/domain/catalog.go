package domain

// Catalog maps suite identifiers to their ordered test method names.
// Insertion order of suites is preserved; no suite ever carries an empty
// method list.
type Catalog struct {
	suites  []string
	methods map[string][]string
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{methods: make(map[string][]string)}
}

// Set stores the method list for a suite. A suite that is already present
// keeps its position and has its list replaced (last write wins). The
// methods slice is copied so later mutation of the argument cannot leak in.
func (c *Catalog) Set(suite string, methods []string) {
	if _, ok := c.methods[suite]; !ok {
		c.suites = append(c.suites, suite)
	}
	copied := make([]string, len(methods))
	copy(copied, methods)
	c.methods[suite] = copied
}

// Methods returns a copy of the method list for a suite.
func (c *Catalog) Methods(suite string) ([]string, bool) {
	methods, ok := c.methods[suite]
	if !ok {
		return nil, false
	}
	copied := make([]string, len(methods))
	copy(copied, methods)
	return copied, true
}

// Suites returns the suite identifiers in insertion order.
func (c *Catalog) Suites() []string {
	suites := make([]string, len(c.suites))
	copy(suites, c.suites)
	return suites
}

// Len returns the number of suites in the catalog.
func (c *Catalog) Len() int {
	return len(c.suites)
}

// CountMethods returns the total number of methods across all suites.
func (c *Catalog) CountMethods() int {
	var total int
	for _, methods := range c.methods {
		total += len(methods)
	}
	return total
}
