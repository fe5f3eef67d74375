package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shtest/internal/config"
	"shtest/internal/discovery"
	"shtest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	script := args[0]

	cases, err := lc.scanner.Scan(script)
	if err != nil {
		return err
	}
	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.Yellow("No test functions found in %s", script)
		return nil
	}

	lc.formatter.PrintCaseList(script, cases)
	return nil
}
