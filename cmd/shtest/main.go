package main

import (
	"errors"
	"fmt"
	"os"

	"shtest/internal/cli"
	"shtest/internal/cli/commands"
	"shtest/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Optional .env for SHTEST_* overrides
	_ = godotenv.Load()

	// Create root command
	rootCmd := &cobra.Command{
		Use:     "shtest",
		Short:   "Unit-test harness for shell test scripts",
		Long:    `A unit-test harness for shell-invoked test scripts. Discovers test functions by naming convention (testXxx), executes them sequentially, records pass/fail/skip outcomes and exits with the failure count.`,
		Version: version,
		// Errors are reported once, below, with exit-code handling.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
