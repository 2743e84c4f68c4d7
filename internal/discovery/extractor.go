package discovery

import "regexp"

// testMethodPattern matches a function declaration whose name carries the
// lowercase "test" prefix. Capital-T names do not match.
var testMethodPattern = regexp.MustCompile(`function\s+(test[A-Za-z0-9_]+)`)

// Extractor finds test method names in file content by textual pattern
// matching. It never fails: content with no matches, including binary data,
// simply yields no methods.
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns every matched test method name in order of first
// appearance. Matches are not deduplicated: a declaration appearing twice
// in the text yields two entries.
func (e *Extractor) Extract(content string) []string {
	matches := testMethodPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	methods := make([]string, 0, len(matches))
	for _, match := range matches {
		methods = append(methods, match[1])
	}
	return methods
}
