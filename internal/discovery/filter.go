package discovery

import (
	"path/filepath"
	"strings"

	"shtest/internal/domain"
)

// Filter filters test cases by name pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps test cases whose name matches the wildcard pattern
// (supports * and ?). A pattern without wildcards matches as a substring.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if matched, err := filepath.Match(pattern, tc.Name); err == nil && matched {
			filtered = append(filtered, tc)
			continue
		}
		if !strings.ContainsAny(pattern, "*?") && strings.Contains(tc.Name, pattern) {
			filtered = append(filtered, tc)
		}
	}

	return filtered
}
