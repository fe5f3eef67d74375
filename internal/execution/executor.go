package execution

import (
	"context"
	"fmt"
	"time"

	"shtest/internal/domain"
	"shtest/internal/report"
	"shtest/internal/ui"
)

// Executor runs discovered test cases and returns their results.
type Executor interface {
	Execute(ctx context.Context, script string, cases []domain.TestCase) ([]domain.CaseResult, time.Duration, error)
}

// Sequential runs one test function to completion before starting the next.
// A failing case never aborts the run.
type Sequential struct {
	runner   *Runner
	reporter *report.Reporter
	stats    *domain.Stats
	progress *ui.ProgressBar
}

// NewSequential creates a Sequential executor recording into stats and
// reporting through reporter.
func NewSequential(runner *Runner, reporter *report.Reporter, stats *domain.Stats) *Sequential {
	return &Sequential{
		runner:   runner,
		reporter: reporter,
		stats:    stats,
	}
}

// SetProgress sets a progress bar updated after each test function.
func (e *Sequential) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// Execute runs all cases in order, updating counters, the reporter and the
// progress bar per case.
func (e *Sequential) Execute(ctx context.Context, script string, cases []domain.TestCase) ([]domain.CaseResult, time.Duration, error) {
	start := time.Now()
	results := make([]domain.CaseResult, 0, len(cases))

	for i, tc := range cases {
		result := e.runner.Run(ctx, script, tc)
		results = append(results, result)
		e.stats.Record(result.Status)
		e.reporter.Result(domain.Assertion{
			Test:     result.Name,
			Line:     result.Line,
			Status:   result.Status,
			Expected: "exit status 0",
			Provided: fmt.Sprintf("exit status %d", result.ExitCode),
		})
		if e.progress != nil {
			e.progress.Update(i+1, e.stats.Passed, e.stats.Failed)
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(start), nil
}
