package config

import (
	"os"
	"path/filepath"
	"strconv"

	"shtest/internal/domain"
)

// Config holds all configuration for a script-mode run.
type Config struct {
	// Execution settings
	Shell          string
	TimeoutSeconds int

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	Verbosity      domain.Verbosity
	NoColor        bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags.
type Flags struct {
	NameFilter     string
	TimeoutSeconds int
	Quiet          bool
	SummaryOnly    bool
	Verbose        bool
}

// New creates a Config with defaults and environment overrides applied.
// SHTEST_SHELL, SHTEST_OUTPUT_DIR and SHTEST_NO_COLOR may come from the
// environment or a .env file loaded by the caller.
func New() *Config {
	cfg := &Config{
		Shell:          DefaultShell,
		TimeoutSeconds: DefaultTimeoutSeconds,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Verbosity:      domain.Normal,
	}
	if shell := os.Getenv("SHTEST_SHELL"); shell != "" {
		cfg.Shell = shell
	}
	if dir := os.Getenv("SHTEST_OUTPUT_DIR"); dir != "" {
		cfg.OutputJSONDir = dir
	}
	if v := os.Getenv("SHTEST_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	return cfg
}

// ApplyFlags folds parsed command-line flags into the config. Verbosity flags
// are mutually exclusive in effect; quiet wins over summary over verbose.
func (c *Config) ApplyFlags(f Flags) {
	c.Flags = f
	if f.TimeoutSeconds > 0 {
		c.TimeoutSeconds = f.TimeoutSeconds
	}
	switch {
	case f.Quiet:
		c.Verbosity = domain.Quiet
	case f.SummaryOnly:
		c.Verbosity = domain.Summary
	case f.Verbose:
		c.Verbosity = domain.Verbose
	}
}

// GetOutputPath returns the path to the last-run JSON file. Resolves to an
// absolute path so run and failures always read/write the same file
// regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
