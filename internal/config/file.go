package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional per-project configuration file.
type fileConfig struct {
	NamespacePrefix string   `yaml:"namespace_prefix"`
	TestPath        string   `yaml:"test_path"`
	SkipDirs        []string `yaml:"skip_dirs"`
	ExcludeGlobs    []string `yaml:"exclude_globs"`
}

// LoadFile applies overrides from the project's .ptd.yaml, if present.
// A missing file is not an error.
func (c *Config) LoadFile() error {
	path := filepath.Join(c.ProjectPath, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", FileName, err)
	}

	if fc.NamespacePrefix != "" {
		c.NamespacePrefix = fc.NamespacePrefix
	}
	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if len(fc.SkipDirs) > 0 {
		c.SkipDirs = fc.SkipDirs
	}
	if len(fc.ExcludeGlobs) > 0 {
		c.ExcludeGlobs = fc.ExcludeGlobs
	}
	return nil
}
