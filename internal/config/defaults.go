package config

const (
	// DefaultShell is the shell used to source scripts and invoke test functions.
	DefaultShell = "sh"
	// DefaultOutputJSONFile is the default output JSON file name.
	DefaultOutputJSONFile = "results.json"
	// DefaultOutputJSONDir is the default output directory.
	DefaultOutputJSONDir = ".shtest"
	// DefaultTimeoutSeconds is the default per-test timeout; zero means none.
	DefaultTimeoutSeconds = 0
	// SkipExitCode is the exit status a script test function uses to record a
	// skip (EX_TEMPFAIL).
	SkipExitCode = 75
)
