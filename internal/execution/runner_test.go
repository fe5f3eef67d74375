package execution

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shtest/internal/config"
	"shtest/internal/domain"
	"shtest/internal/report"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.sh")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestRunner_Run(t *testing.T) {
	cfg := config.New()
	runner := NewRunner(cfg)
	script := writeScript(t, `testPass() {
  echo ok
}

testFail() {
  echo broken
  return 3
}

testSkip() {
  return 75
}
`)

	t.Run("passing function", func(t *testing.T) {
		result := runner.Run(context.Background(), script, domain.TestCase{Name: "testPass", Line: 1})
		if result.Status != domain.Passed {
			t.Errorf("expected pass, got %v (output %q)", result.Status, result.Output)
		}
		if !strings.Contains(result.Output, "ok") {
			t.Errorf("expected captured output, got %q", result.Output)
		}
	})

	t.Run("failing function records exit code", func(t *testing.T) {
		result := runner.Run(context.Background(), script, domain.TestCase{Name: "testFail", Line: 5})
		if result.Status != domain.Failed {
			t.Errorf("expected fail, got %v", result.Status)
		}
		if result.ExitCode != 3 {
			t.Errorf("expected exit code 3, got %d", result.ExitCode)
		}
	})

	t.Run("skip exit status", func(t *testing.T) {
		result := runner.Run(context.Background(), script, domain.TestCase{Name: "testSkip", Line: 10})
		if result.Status != domain.Skipped {
			t.Errorf("expected skip, got %v", result.Status)
		}
	})

	t.Run("bare relative script name", func(t *testing.T) {
		// "." would do a PATH lookup for a name without a slash; the runner
		// must resolve the path so this still sources the local script.
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "suite.sh"), []byte("testPass() {\n  echo ok\n}\n"), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get wd: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("failed to chdir: %v", err)
		}
		defer os.Chdir(wd)

		result := runner.Run(context.Background(), "suite.sh", domain.TestCase{Name: "testPass", Line: 1})
		if result.Status != domain.Passed {
			t.Errorf("expected pass, got %v (output %q)", result.Status, result.Output)
		}
	})

	t.Run("timeout counts as failure", func(t *testing.T) {
		slow := writeScript(t, `testSlow() {
  sleep 5
}
`)
		timeoutCfg := config.New()
		timeoutCfg.TimeoutSeconds = 1
		result := NewRunner(timeoutCfg).Run(context.Background(), slow, domain.TestCase{Name: "testSlow", Line: 1})
		if result.Status != domain.Failed {
			t.Errorf("expected timeout failure, got %v", result.Status)
		}
		if !strings.Contains(result.Output, "timed out") {
			t.Errorf("expected timeout notice in output, got %q", result.Output)
		}
	})
}

func TestSequential_Execute(t *testing.T) {
	cfg := config.New()
	script := writeScript(t, `testOne() { :; }

testTwo() { return 1; }

testThree() { return 75; }
`)
	cases := []domain.TestCase{
		{Name: "testOne", Line: 1},
		{Name: "testTwo", Line: 3},
		{Name: "testThree", Line: 5},
	}

	var buf bytes.Buffer
	stats := &domain.Stats{}
	reporter := report.New(&buf, domain.Normal)
	executor := NewSequential(NewRunner(cfg), reporter, stats)

	results, duration, err := executor.Execute(context.Background(), script, cases)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if duration <= 0 {
		t.Error("expected a positive duration")
	}

	if stats.Passed != 1 || stats.Failed != 1 || stats.Skipped != 1 {
		t.Errorf("expected 1/1/1 counters, got %d/%d/%d", stats.Passed, stats.Failed, stats.Skipped)
	}

	// A failing case must not stop the ones after it.
	if results[2].Name != "testThree" {
		t.Errorf("expected testThree to run last, got %s", results[2].Name)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	expected := []string{
		"testOne:1:Passed",
		"testTwo:3:Failed",
		"testThree:5:Skipped",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d report lines, got %d: %q", len(expected), len(lines), buf.String())
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}
