package domain

import "time"

// Status is the verdict of a single assertion or test case.
type Status int

const (
	Passed Status = iota
	Failed
	Skipped
)

// String returns the status word used in per-assertion output lines.
func (s Status) String() string {
	switch s {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	case Skipped:
		return "Skipped"
	}
	return "Unknown"
}

// Stats holds the counters for one run. Every assertion increments exactly
// one counter.
type Stats struct {
	Passed  int
	Failed  int
	Skipped int
}

// Record increments the counter for the given status.
func (s *Stats) Record(st Status) {
	switch st {
	case Passed:
		s.Passed++
	case Failed:
		s.Failed++
	case Skipped:
		s.Skipped++
	}
}

// Total returns the number of recorded assertions.
func (s Stats) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// ExitCode returns the process exit code for the run: the failure count,
// saturated at 255 since POSIX truncates exit statuses modulo 256.
func (s Stats) ExitCode() int {
	if s.Failed > 255 {
		return 255
	}
	return s.Failed
}

// Assertion is one recorded assertion outcome.
type Assertion struct {
	Test     string // name of the test function the assertion ran in
	Line     int    // source line of the assertion call or function declaration
	Status   Status
	Expected string
	Provided string
}

// TestCase is a test function discovered in a script.
type TestCase struct {
	Name string // function name, matches test[A-Za-z0-9_]+
	Line int    // declaration line in the script
}

// CaseResult is the outcome of executing one script test function.
type CaseResult struct {
	Name     string
	Line     int
	Status   Status
	ExitCode int
	Output   string
	Duration time.Duration
}

// RunMeta describes one recorded script run.
type RunMeta struct {
	Script          string  `json:"script"`
	TotalCases      int     `json:"total_cases"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// CaseFailure is a failed test case persisted for the failures viewer.
type CaseFailure struct {
	Name     string `json:"name"`
	Script   string `json:"script"`
	Line     int    `json:"line"`
	ExitCode int    `json:"exit_code"`
	Output   string `json:"output"`
}

// RunOutput is the complete persisted output of a script run.
type RunOutput struct {
	Meta     RunMeta       `json:"meta"`
	Failures []CaseFailure `json:"failures"`
}
