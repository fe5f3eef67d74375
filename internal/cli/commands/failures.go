package commands

import (
	"os"

	"github.com/spf13/cobra"

	"shtest/internal/config"
	"shtest/internal/report"
	"shtest/internal/storage"
	"shtest/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.FailureViewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(
	cfg *config.Config,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.FailureViewer,
) *FailuresCommand {
	return &FailuresCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := fc.storage.Load()
	if err != nil {
		return err
	}

	// The interactive viewer needs a terminal; fall back to plain output
	// when piped.
	if !report.IsTerminal(os.Stdout) {
		fc.formatter.PrintLastRun(output)
		return nil
	}

	return fc.viewer.View(output)
}
