package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"shtest/internal/domain"
)

// Reporter formats and emits per-assertion result lines and the final
// summary, gated by verbosity.
type Reporter struct {
	w         io.Writer
	verbosity domain.Verbosity
	passed    *color.Color
	failed    *color.Color
	skipped   *color.Color
}

// New creates a Reporter writing to w. Color is enabled only when w is a
// terminal; use SetColor to override.
func New(w io.Writer, v domain.Verbosity) *Reporter {
	r := &Reporter{
		w:         w,
		verbosity: v,
		passed:    color.New(color.FgGreen),
		failed:    color.New(color.FgRed),
		skipped:   color.New(color.FgYellow),
	}
	r.SetColor(IsTerminal(w))
	return r
}

// IsTerminal reports whether w is a color-capable terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// SetColor overrides terminal detection.
func (r *Reporter) SetColor(on bool) {
	if on {
		r.passed.EnableColor()
		r.failed.EnableColor()
		r.skipped.EnableColor()
	} else {
		r.passed.DisableColor()
		r.failed.DisableColor()
		r.skipped.DisableColor()
	}
}

// Verbosity returns the reporter's verbosity level.
func (r *Reporter) Verbosity() domain.Verbosity {
	return r.verbosity
}

// Result emits one assertion outcome line, test:line:Status. At verbose
// level a failure is followed by its expected and provided values.
func (r *Reporter) Result(a domain.Assertion) {
	if r.verbosity < domain.Normal {
		return
	}

	var status string
	switch a.Status {
	case domain.Passed:
		status = r.passed.Sprint(a.Status)
	case domain.Failed:
		status = r.failed.Sprint(a.Status)
	case domain.Skipped:
		status = r.skipped.Sprint(a.Status)
	default:
		status = a.Status.String()
	}
	fmt.Fprintf(r.w, "%s:%d:%s\n", a.Test, a.Line, status)

	if a.Status == domain.Failed && r.verbosity >= domain.Verbose {
		fmt.Fprintf(r.w, "Expected: %s\n", a.Expected)
		fmt.Fprintf(r.w, "Provided: %s\n", a.Provided)
	}
}

// Summary emits the final counters line, unless the run is quiet.
func (r *Reporter) Summary(s domain.Stats) {
	if r.verbosity < domain.Summary {
		return
	}
	fmt.Fprintf(r.w, "Done. %d passed. %d failed. %d skipped.\n", s.Passed, s.Failed, s.Skipped)
}
