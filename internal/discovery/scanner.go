package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"ptd/internal/domain"
)

// Scanner lists the files under a root directory together with their
// contents. Each file is read fully into memory before it is handed to the
// extractor.
type Scanner struct {
	skipDirs     map[string]bool
	excludeGlobs []string
	maxFileSize  int64
}

// NewScanner creates a new Scanner. Directories named in skipDirs and
// hidden directories are not descended into; files whose root-relative path
// matches one of excludeGlobs (doublestar syntax) are ignored, as are files
// larger than maxFileSize bytes.
func NewScanner(skipDirs, excludeGlobs []string, maxFileSize int64) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{
		skipDirs:     skipMap,
		excludeGlobs: excludeGlobs,
		maxFileSize:  maxFileSize,
	}
}

// Scan walks the tree under root and returns every readable file as a
// (relative path, content) pair, in traversal order. An unreadable root or
// file aborts the scan.
func (s *Scanner) Scan(root string) ([]domain.TestFile, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	var files []domain.TestFile
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if s.excluded(relPath) {
			return nil
		}

		if s.maxFileSize > 0 {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			if fi.Size() > s.maxFileSize {
				return nil
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading file %s: %w", path, err)
		}

		files = append(files, domain.TestFile{
			RelPath: relPath,
			Content: string(content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (s *Scanner) excluded(relPath string) bool {
	for _, pattern := range s.excludeGlobs {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			// Invalid pattern syntax - skip this pattern
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
