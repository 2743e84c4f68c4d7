package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestPath:    ".",
				Flags:       Flags{},
			},
			expected: ".",
		},
		{
			name: "with test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags: Flags{
					TestPath: "tests",
				},
			},
			expected: "/project/tests",
		},
		{
			name: "absolute test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags: Flags{
					TestPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
		{
			name: "test path from config file",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "tests/Feature",
				Flags:       Flags{},
			},
			expected: "/project/tests/Feature",
		},
		{
			name: "flag overrides config file path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "tests/Feature",
				Flags: Flags{
					TestPath: "tests/Unit",
				},
			},
			expected: "/project/tests/Unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.NamespacePrefix != DefaultNamespacePrefix {
		t.Errorf("expected NamespacePrefix %s, got %s", DefaultNamespacePrefix, cfg.NamespacePrefix)
	}

	if len(cfg.SkipDirs) != len(DefaultSkipDirs) {
		t.Errorf("expected %d skip dirs, got %d", len(DefaultSkipDirs), len(cfg.SkipDirs))
	}
}

func TestConfig_LoadFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ptd-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg := New()
		cfg.ProjectPath = tmpDir
		if err := cfg.LoadFile(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if cfg.NamespacePrefix != DefaultNamespacePrefix {
			t.Errorf("defaults should be untouched, got %s", cfg.NamespacePrefix)
		}
	})

	t.Run("overrides are applied", func(t *testing.T) {
		content := `namespace_prefix: Spec
test_path: tests
skip_dirs:
  - vendor
exclude_globs:
  - "**/fixtures/**"
`
		if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg := New()
		cfg.ProjectPath = tmpDir
		if err := cfg.LoadFile(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.NamespacePrefix != "Spec" {
			t.Errorf("expected prefix Spec, got %s", cfg.NamespacePrefix)
		}
		if cfg.TestPath != "tests" {
			t.Errorf("expected test path tests, got %s", cfg.TestPath)
		}
		if !reflect.DeepEqual(cfg.SkipDirs, []string{"vendor"}) {
			t.Errorf("expected skip dirs override, got %v", cfg.SkipDirs)
		}
		if !reflect.DeepEqual(cfg.ExcludeGlobs, []string{"**/fixtures/**"}) {
			t.Errorf("expected exclude globs override, got %v", cfg.ExcludeGlobs)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("{not yaml"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg := New()
		cfg.ProjectPath = tmpDir
		if err := cfg.LoadFile(); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}
