package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path
	DefaultTestPath = "."
	// DefaultNamespacePrefix is the root prefix of every suite identifier
	DefaultNamespacePrefix = "Tests"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultMaxFileSize is the largest file the scanner will read (10MB)
	DefaultMaxFileSize = 10 * 1024 * 1024
	// ReportWidth is the column at which the reporter right-aligns durations
	ReportWidth = 120
	// FileName is the optional per-project configuration file
	FileName = ".ptd.yaml"
)

// DefaultSkipDirs are the default directories to skip when scanning for tests
var DefaultSkipDirs = []string{
	"vendor",
	"node_modules",
	"public",
	"storage",
	"bootstrap",
	"config",
	"database",
	"resources",
	"routes",
}
