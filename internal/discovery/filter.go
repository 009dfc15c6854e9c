package discovery

import (
	"path/filepath"
	"strings"

	"ftgen/internal/domain"
)

// Filter filters test classes by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps test classes whose simple name matches pattern.
// Supports patterns like "*ApiTest" or "*Payment*"; a pattern without wildcards is a substring match.
func (f *Filter) FilterByName(classes []domain.TestClass, pattern string) []domain.TestClass {
	if pattern == "" {
		return classes
	}

	var filtered []domain.TestClass
	for _, tc := range classes {
		if matchName(tc.SimpleName(), pattern) {
			filtered = append(filtered, tc)
		}
	}

	return filtered
}

func matchName(name, pattern string) bool {
	// Try to match using filepath.Match (supports * and ? wildcards)
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match is anchored; for patterns like "*User*Test" fall back to
	// requiring every non-empty segment to appear in order
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}
