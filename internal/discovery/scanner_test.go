package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"shtest/internal/domain"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.sh")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestScanner_Scan(t *testing.T) {
	scanner := NewScanner()

	t.Run("finds both declaration forms", func(t *testing.T) {
		script := writeScript(t, `#!/bin/sh

testFirst() {
  echo first
}

function testSecond() {
  echo second
}

helper() {
  echo not a test
}

function setup() {
  echo also not a test
}
`)
		cases, err := scanner.Scan(script)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []domain.TestCase{
			{Name: "testFirst", Line: 3},
			{Name: "testSecond", Line: 7},
		}
		if len(cases) != len(expected) {
			t.Fatalf("expected %d cases, got %d: %v", len(expected), len(cases), cases)
		}
		for i, want := range expected {
			if cases[i] != want {
				t.Errorf("case %d: expected %+v, got %+v", i, want, cases[i])
			}
		}
	})

	t.Run("preserves first-appearance order", func(t *testing.T) {
		script := writeScript(t, `testZebra() { :; }
testAlpha() { :; }
testMiddle() { :; }
`)
		cases, err := scanner.Scan(script)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		names := []string{"testZebra", "testAlpha", "testMiddle"}
		for i, name := range names {
			if cases[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, cases[i].Name)
			}
		}
	})

	t.Run("re-declaration keeps first position", func(t *testing.T) {
		script := writeScript(t, `testDup() { echo one; }
testOther() { :; }
testDup() { echo two; }
`)
		cases, err := scanner.Scan(script)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cases) != 2 {
			t.Fatalf("expected 2 cases, got %d", len(cases))
		}
		if cases[0].Name != "testDup" || cases[0].Line != 1 {
			t.Errorf("expected testDup at line 1, got %+v", cases[0])
		}
	})

	t.Run("ignores names not matching the convention", func(t *testing.T) {
		script := writeScript(t, `test() { :; }
Test_thing() { :; }
mytest() { :; }
test_ok() { :; }
`)
		cases, err := scanner.Scan(script)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// "test" alone has no suffix; only test_ok qualifies.
		if len(cases) != 1 || cases[0].Name != "test_ok" {
			t.Errorf("expected only test_ok, got %v", cases)
		}
	})

	t.Run("returns error for missing script", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/script.sh")
		if err == nil {
			t.Error("expected error for missing script")
		}
	})
}
