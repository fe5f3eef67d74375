package domain

// Verbosity controls how much output a run produces.
type Verbosity int

const (
	// Quiet suppresses all output; only the exit code reports the result.
	Quiet Verbosity = iota
	// Summary prints only the final summary line.
	Summary
	// Normal prints one line per assertion plus the summary.
	Normal
	// Verbose additionally prints expected/provided detail for failures.
	Verbose
)
