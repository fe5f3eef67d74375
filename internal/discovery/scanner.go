package discovery

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"shtest/internal/domain"
)

// testFuncPattern matches a shell test function declaration, either
// "testName()" or "function testName()", optionally indented.
var testFuncPattern = regexp.MustCompile(`^\s*(?:function\s+)?(test[A-Za-z0-9_]+)\s*\(\s*\)`)

// Scanner extracts test functions from a shell script without executing it.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads the script and returns its test functions in first-appearance
// order. A re-declared name keeps its first position; the shell itself makes
// the last body win at execution time.
func (s *Scanner) Scan(path string) ([]domain.TestCase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading script %s: %w", path, err)
	}

	var cases []domain.TestCase
	seen := make(map[string]bool)
	for i, line := range strings.Split(string(content), "\n") {
		match := testFuncPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		cases = append(cases, domain.TestCase{Name: name, Line: i + 1})
	}

	return cases, nil
}
