package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shtest/internal/domain"
)

// Save writes the run's counters and failure details to the configured JSON
// output file.
func (s *JSONStorage) Save(script string, results []domain.CaseResult, stats domain.Stats, duration time.Duration) error {
	var failures []domain.CaseFailure
	for _, r := range results {
		if r.Status != domain.Failed {
			continue
		}
		failures = append(failures, domain.CaseFailure{
			Name:     r.Name,
			Script:   script,
			Line:     r.Line,
			ExitCode: r.ExitCode,
			Output:   r.Output,
		})
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			Script:          script,
			TotalCases:      len(results),
			Passed:          stats.Passed,
			Failed:          stats.Failed,
			Skipped:         stats.Skipped,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Failures: failures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
