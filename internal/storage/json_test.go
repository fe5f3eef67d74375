package storage

import (
	"testing"
	"time"

	"shtest/internal/config"
	"shtest/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = t.TempDir()
	st := NewJSONStorage(cfg)

	results := []domain.CaseResult{
		{Name: "testOne", Line: 1, Status: domain.Passed},
		{Name: "testTwo", Line: 5, Status: domain.Failed, ExitCode: 2, Output: "boom\n"},
		{Name: "testThree", Line: 9, Status: domain.Skipped},
	}
	stats := domain.Stats{Passed: 1, Failed: 1, Skipped: 1}

	if err := st.Save("suite.sh", results, stats, 1500*time.Millisecond); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	meta := output.Meta
	if meta.Script != "suite.sh" {
		t.Errorf("expected script suite.sh, got %s", meta.Script)
	}
	if meta.TotalCases != 3 || meta.Passed != 1 || meta.Failed != 1 || meta.Skipped != 1 {
		t.Errorf("unexpected meta counters: %+v", meta)
	}
	if meta.DurationSeconds != 1.5 {
		t.Errorf("expected 1.5s duration, got %f", meta.DurationSeconds)
	}

	// Only failed cases are persisted as details.
	if len(output.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(output.Failures))
	}
	failure := output.Failures[0]
	if failure.Name != "testTwo" || failure.ExitCode != 2 || failure.Output != "boom\n" {
		t.Errorf("unexpected failure record: %+v", failure)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = t.TempDir()
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected error when no run has been recorded")
	}
}
