package domain

// TestFile is a source file discovered under the scanned root, read fully
// into memory before pattern matching.
type TestFile struct {
	RelPath string // Path relative to the scanned root
	Content string // Full file content
}
