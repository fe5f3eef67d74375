// Package shtest is a unit-test harness for shell-style test functions.
//
// A test program registers its test functions and hands control to Main:
//
//	func main() {
//		shtest.Register("testGreeting", func(t *shtest.T) {
//			out := strings.TrimSpace(run("echo hello"))
//			t.AssertEqual(out, "hello")
//		})
//		shtest.Main()
//	}
//
// Main runs the registered tests in registration order, prints one line per
// assertion (testName:line:Passed|Failed|Skipped), prints a summary and exits
// with the number of failed assertions. Output detail is controlled by the
// -v/-s/-q flags; unknown flags are ignored.
package shtest

import (
	"fmt"
	"io"
	"os"

	"shtest/internal/domain"
	"shtest/internal/report"
)

var defaultRegistry = NewRegistry()

// Register adds a test function to the default registry. The name must match
// the test naming convention (testXxx); anything else is a programmer error
// and panics. Re-registering a name replaces the function but keeps its
// original position.
func Register(name string, fn Func) {
	if err := defaultRegistry.Add(name, fn); err != nil {
		panic(err)
	}
}

// Main runs all registered tests and exits the process with the number of
// failed assertions (saturated at 255).
func Main() {
	os.Exit(Run(os.Args[1:], os.Stdout, defaultRegistry))
}

// Run is Main without the process exit: it parses args, runs the registry's
// tests, writes output to out and returns the exit code. With no registered
// tests (or -h) it prints usage and returns 0.
func Run(args []string, out io.Writer, reg *Registry) int {
	opts := parseArgs(args)
	if opts.help {
		printUsage(out)
		return 0
	}
	if reg.Len() == 0 {
		printUsage(out)
		return 0
	}

	stats := &domain.Stats{}
	rep := report.New(out, opts.verbosity)
	for _, entry := range reg.Entries() {
		runTest(entry, stats, rep)
	}
	rep.Summary(*stats)
	return stats.ExitCode()
}

// runTest invokes one test function. A panic inside the function is recorded
// as a single failure and the run continues with the next test; the failure
// line is reported as 0 since the panic site is not an assertion call.
func runTest(entry Entry, stats *domain.Stats, rep *report.Reporter) {
	t := &T{name: entry.Name, stats: stats, rep: rep}
	defer func() {
		if r := recover(); r != nil {
			t.record(domain.Failed, 0, "test to complete without panicking", fmt.Sprintf("panic: %v", r))
		}
	}()
	entry.Fn(t)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: <test program> [options]

Runs every registered test function (names matching testXxx) in registration
order and exits with the number of failed assertions.

Options:
  -v, --verbose   print expected/provided detail for failures
  -s, --summary   print only the final summary line
  -q, --quiet     print nothing; only the exit code reports the result
  -h, --help      show this help and exit
`)
}
