package commands

import (
	"shtest/internal/cli"
	"shtest/internal/config"
	"shtest/internal/discovery"
	"shtest/internal/execution"
	"shtest/internal/storage"
	"shtest/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, runner, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, formatter, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script's test functions",
		Long:  "Discover test functions (testXxx) in a shell script and execute them sequentially. The exit code is the number of failed test functions.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test functions by name pattern (supports wildcards, e.g. 'testUser*')")
	runCmd.Flags().IntVarP(&flags.Timeout, "timeout", "t", 0, "Per-test timeout in seconds (0 disables)")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print expected/provided detail for failures")
	runCmd.Flags().BoolVarP(&flags.Summary, "summary", "s", false, "Print only the final summary line")
	runCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print nothing; report only via the exit code")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list <script>",
		Short: "List a script's test functions",
		Long:  "Scan a shell script and list its test functions without executing them",
		Args:  cobra.ExactArgs(1),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test functions by name pattern (supports wildcards, e.g. 'testUser*')")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View the last run's failures",
		Long:  "Display the failed test functions from the last recorded run, interactively on a terminal",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
