package execution

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"shtest/internal/config"
	"shtest/internal/domain"
)

// Runner executes a single test function from a shell script.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run sources the script and invokes one test function in a fresh shell.
// Exit status 0 is a pass, config.SkipExitCode a skip, anything else a fail.
// A configured timeout that expires counts as a failure.
func (r *Runner) Run(ctx context.Context, script string, tc domain.TestCase) domain.CaseResult {
	if r.config.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(r.config.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	// POSIX "." performs a PATH lookup for names without a slash, so a bare
	// relative script name must be resolved before sourcing.
	scriptPath := script
	if abs, err := filepath.Abs(script); err == nil {
		scriptPath = abs
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, r.config.Shell, "-c",
		fmt.Sprintf(". %s && %s", shellQuote(scriptPath), tc.Name))
	output, err := cmd.CombinedOutput()

	result := domain.CaseResult{
		Name:     tc.Name,
		Line:     tc.Line,
		Output:   string(output),
		Duration: time.Since(start),
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Status = domain.Failed
		result.ExitCode = -1
		result.Output += fmt.Sprintf("\ntimed out after %ds", r.config.TimeoutSeconds)
	case err == nil:
		result.Status = domain.Passed
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			if result.ExitCode == config.SkipExitCode {
				result.Status = domain.Skipped
			} else {
				result.Status = domain.Failed
			}
		} else {
			// Shell could not be started at all.
			result.Status = domain.Failed
			result.ExitCode = -1
			result.Output += err.Error()
		}
	}

	return result
}

// shellQuote wraps a path in single quotes so it survives word splitting
// inside the shell command line.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
