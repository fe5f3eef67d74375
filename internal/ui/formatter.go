package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"shtest/internal/config"
	"shtest/internal/domain"
)

// Formatter formats and displays script-mode output beyond the per-assertion
// lines: discovered test lists, failure recaps and stored runs.
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintCaseList prints the discovered test functions of a script as a tree.
func (f *Formatter) PrintCaseList(script string, cases []domain.TestCase) {
	color.Green("Found %d test function(s) in %s:\n", len(cases), script)

	for i, tc := range cases {
		connector := "├── "
		if i == len(cases)-1 {
			connector = "└── "
		}
		fmt.Printf("%s%s %s\n", connector, color.YellowString(tc.Name), color.CyanString("(line %d)", tc.Line))
	}
}

// PrintFailureRecap lists the failed test functions of a finished run with a
// hint to the failures viewer.
func (f *Formatter) PrintFailureRecap(results []domain.CaseResult) {
	var failed []domain.CaseResult
	for _, r := range results {
		if r.Status == domain.Failed {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		return
	}

	fmt.Println()
	color.Red("✗ %d test function(s) failed:", len(failed))
	for _, r := range failed {
		color.Red("  %s (line %d, exit status %d)", r.Name, r.Line, r.ExitCode)
	}
	fmt.Println()
	fmt.Println("Run 'shtest failures' to inspect the captured output.")
}

// PrintLastRun prints a stored run in plain form, for non-interactive streams
// where the tview viewer cannot run.
func (f *Formatter) PrintLastRun(output *domain.RunOutput) {
	meta := output.Meta

	color.Cyan("Last run: %s (%s)", meta.Script, meta.Timestamp)
	fmt.Printf("Total: %d  ", meta.TotalCases)
	color.Green("Passed: %d  ", meta.Passed)
	color.Red("Failed: %d  ", meta.Failed)
	color.Yellow("Skipped: %d", meta.Skipped)
	fmt.Printf("Duration: %s\n", meta.Duration)

	if len(output.Failures) == 0 {
		color.Green("✓ No test failures recorded!")
		return
	}

	for _, failure := range output.Failures {
		fmt.Println()
		color.Red("%s (%s:%d, exit status %d)", failure.Name, failure.Script, failure.Line, failure.ExitCode)
		out := strings.TrimRight(failure.Output, "\n")
		if out == "" {
			fmt.Println("  (no output)")
			continue
		}
		for _, line := range strings.Split(out, "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
}
