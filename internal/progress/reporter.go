// Package progress renders per-file feedback during a rename pass. An
// interactive terminal gets an animated bar; everything else gets plain
// outcome lines on the error stream, safe for pipes and CI logs.
package progress

import (
	"io"

	"github.com/joabzzz/r3dy/internal/terminal"
)

// Reporter receives progress events during a rename pass.
//
// Begin must be called once before any other method and Finish exactly
// once at the end; Finish flushes any output the renderer buffered.
type Reporter interface {
	// Begin announces the total number of files about to be processed.
	Begin(total int)

	// SetLabel names the file currently being processed.
	SetLabel(label string)

	// Notef records a per-file outcome line that must remain visible
	// after the run.
	Notef(format string, args ...any)

	// Increment marks the current file as processed.
	Increment()

	// Finish completes rendering and flushes buffered outcome lines.
	Finish()
}

// New selects the reporter for a run: an animated bar when the terminal
// is interactive, plain lines otherwise. The bar renders to barW while
// outcome lines always go to noteW, so a redirected stdout stays clean.
func New(capabilities terminal.Capabilities, barW, noteW io.Writer) Reporter {
	if capabilities.IsInteractive() {
		return NewBarReporter(barW, noteW, capabilities.SupportsColor())
	}
	return NewPlainReporter(noteW)
}
