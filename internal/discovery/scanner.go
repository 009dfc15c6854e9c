package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner walks a source tree and produces tag lines for tagged test files,
// in the same shape `grep -r '@Tag("functional")'` would print them
type Scanner struct {
	skipDirs map[string]bool
	marker   string
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string, tag string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, marker: TagMarker(tag)}
}

// Scan finds all tagged test sources under root and returns one line per file,
// with paths relative to root. progress, if not nil, is called with the number of files inspected so far.
func (s *Scanner) Scan(root string, progress func(int)) ([]string, error) {
	var lines []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan path is not a directory: %s", root)
	}

	inspected := 0
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if !isTestSource(path) {
			return nil
		}

		inspected++
		if progress != nil {
			progress(inspected)
		}

		tagged, err := s.containsMarker(path)
		if err != nil {
			return err
		}
		if !tagged {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		lines = append(lines, filepath.ToSlash(rel)+":"+s.marker)
		return nil
	})

	return lines, err
}

// isTestSource reports whether path is a Java or Scala file under a test source root
func isTestSource(path string) bool {
	ext := filepath.Ext(path)
	if ext != ".java" && ext != ".scala" {
		return false
	}
	return strings.Contains(filepath.ToSlash(path), "/src/test/")
}

// containsMarker reports whether any line of the file holds the tag annotation
func (s *Scanner) containsMarker(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error reading file %s: %w", path, err)
	}
	defer file.Close()

	found := false
	err = eachLine(file, func(line string) bool {
		found = strings.Contains(line, s.marker)
		return !found
	})
	if err != nil {
		return false, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return found, nil
}
