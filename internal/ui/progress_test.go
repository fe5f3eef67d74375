package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(2, &buf)

	bar.Update(1, 1, 0)
	bar.Update(2, 1, 1)
	bar.Finish()

	out := buf.String()
	if out == "" {
		t.Fatal("expected progress output")
	}
	if !strings.Contains(out, "Running tests:") {
		t.Errorf("expected description in output, got %q", out)
	}
	if !strings.Contains(out, "failed: 1]") {
		t.Errorf("expected updated counts in output, got %q", out)
	}
}
