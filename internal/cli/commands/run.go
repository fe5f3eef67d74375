package commands

import (
	"fmt"
	"os"

	"shtest/internal/config"
	"shtest/internal/discovery"
	"shtest/internal/domain"
	"shtest/internal/execution"
	"shtest/internal/report"
	"shtest/internal/storage"
	"shtest/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	runner    *execution.Runner
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	runner *execution.Runner,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		runner:    runner,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	script := args[0]

	// Discover test functions
	cases, err := rc.scanner.Scan(script)
	if err != nil {
		return err
	}
	cases = rc.filter.FilterByName(cases, rc.config.Flags.NameFilter)

	// No tests is a usage condition, not a failure.
	if len(cases) == 0 {
		if rc.config.Verbosity > domain.Quiet {
			color.Yellow("No test functions found in %s", script)
			_ = cmd.Usage()
		}
		return nil
	}

	stats := &domain.Stats{}
	reporter := report.New(os.Stdout, rc.config.Verbosity)
	if rc.config.NoColor {
		reporter.SetColor(false)
	}
	executor := execution.NewSequential(rc.runner, reporter, stats)

	// Per-case lines and the progress bar would interleave; show the bar
	// only when per-case lines are suppressed.
	if rc.config.Verbosity == domain.Summary {
		executor.SetProgress(ui.NewProgressBar(len(cases), os.Stderr))
	}

	results, duration, err := executor.Execute(cmd.Context(), script, cases)
	if err != nil {
		return err
	}

	if err := rc.storage.Save(script, results, *stats, duration); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	reporter.Summary(*stats)
	if rc.config.Verbosity >= domain.Normal {
		rc.formatter.PrintFailureRecap(results)
	}

	if stats.Failed > 0 {
		return &ExitError{Code: stats.ExitCode()}
	}
	return nil
}
