package shtest

import (
	"regexp"
	"runtime"
	"strconv"

	"shtest/internal/domain"
	"shtest/internal/report"
)

// T is the handle passed to every test function. It carries the run's
// counters and reporter, so assertions need no global state. Assertions
// record their outcome and return; a failed assertion never stops the test.
type T struct {
	name  string
	stats *domain.Stats
	rep   *report.Reporter
}

// Name returns the test's registered name.
func (t *T) Name() string {
	return t.name
}

// AssertEqual records a pass iff output and expected are equal as literal
// strings. Embedded newlines and surrounding whitespace are compared exactly.
func (t *T) AssertEqual(output, expected string) {
	t.check(output == expected, callerLine(), expected, output)
}

// AssertNotEqual records a pass iff output and expected differ as literal
// strings.
func (t *T) AssertNotEqual(output, expected string) {
	t.check(output != expected, callerLine(), "not "+expected, output)
}

// AssertMatches records a pass iff output as a whole matches pattern, a
// regular expression anchored at both start and end.
func (t *T) AssertMatches(output, pattern string) {
	line := callerLine()
	ok, err := matchAnchored(output, pattern, true)
	if err != nil {
		t.record(domain.Failed, line, pattern, "invalid pattern: "+err.Error())
		return
	}
	t.check(ok, line, pattern, output)
}

// AssertNotMatches records a pass iff output does not match pattern as a
// whole.
func (t *T) AssertNotMatches(output, pattern string) {
	line := callerLine()
	ok, err := matchAnchored(output, pattern, true)
	if err != nil {
		t.record(domain.Failed, line, "not "+pattern, "invalid pattern: "+err.Error())
		return
	}
	t.check(!ok, line, "not "+pattern, output)
}

// AssertStartsWith records a pass iff output matches pattern anchored only at
// the start (a prefix match).
func (t *T) AssertStartsWith(output, pattern string) {
	line := callerLine()
	ok, err := matchAnchored(output, pattern, false)
	if err != nil {
		t.record(domain.Failed, line, pattern, "invalid pattern: "+err.Error())
		return
	}
	t.check(ok, line, pattern, output)
}

// AssertReturn records a pass iff status equals expected. The status is an
// explicit argument; capture ephemeral values like a command's exit code
// before running anything else.
func (t *T) AssertReturn(status, expected int) {
	t.check(status == expected, callerLine(), strconv.Itoa(expected), strconv.Itoa(status))
}

// AssertNotReturn records a pass iff status differs from expected.
func (t *T) AssertNotReturn(status, expected int) {
	t.check(status != expected, callerLine(), "not "+strconv.Itoa(expected), strconv.Itoa(status))
}

// Skip unconditionally records a skip.
func (t *T) Skip() {
	t.record(domain.Skipped, callerLine(), "", "")
}

func (t *T) check(ok bool, line int, expected, provided string) {
	status := domain.Failed
	if ok {
		status = domain.Passed
	}
	t.record(status, line, expected, provided)
}

func (t *T) record(status domain.Status, line int, expected, provided string) {
	t.stats.Record(status)
	t.rep.Result(domain.Assertion{
		Test:     t.name,
		Line:     line,
		Status:   status,
		Expected: expected,
		Provided: provided,
	})
}

// callerLine returns the source line of the assertion call site, two frames
// up: callerLine -> assertion method -> test body.
func callerLine() int {
	_, _, line, ok := runtime.Caller(2)
	if !ok {
		return 0
	}
	return line
}

// matchAnchored compiles pattern anchored at the start, and at the end too
// when full is set, and matches it against output.
func matchAnchored(output, pattern string, full bool) (bool, error) {
	expr := "^(?:" + pattern + ")"
	if full {
		expr += "$"
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false, err
	}
	return re.MatchString(output), nil
}
