package progress

import (
	"fmt"
	"io"
)

// PlainReporter writes outcome lines as they happen and renders nothing
// else. Escape sequences and redrawn bars would only pollute redirected
// output, so non-interactive runs get this reporter.
type PlainReporter struct {
	w io.Writer
}

// NewPlainReporter creates a reporter writing outcome lines to w.
func NewPlainReporter(w io.Writer) *PlainReporter {
	return &PlainReporter{w: w}
}

// Begin implements Reporter. Plain output has no bar to set up.
func (r *PlainReporter) Begin(_ int) {}

// SetLabel implements Reporter. The current file is only shown on an
// interactive bar.
func (r *PlainReporter) SetLabel(_ string) {}

// Notef writes the outcome line immediately.
func (r *PlainReporter) Notef(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Increment implements Reporter.
func (r *PlainReporter) Increment() {}

// Finish implements Reporter. Nothing is buffered, so nothing flushes.
func (r *PlainReporter) Finish() {}
