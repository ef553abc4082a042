package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

// spinnerFrames animate while the bar is active.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const barWidth = 60

// BarReporter renders an animated progress bar: a spinner, the elapsed
// time, the bar itself, a processed counter and the current file name.
//
// The bar owns the terminal while it runs, so outcome lines reported via
// Notef are buffered and flushed to the note writer once rendering
// stops.
type BarReporter struct {
	barW     io.Writer
	noteW    io.Writer
	useColor bool

	progress *mpb.Progress
	bar      *mpb.Bar

	mu    sync.Mutex
	label string
	notes []string
}

// NewBarReporter creates a bar reporter rendering the bar to barW and
// flushing outcome lines to noteW. Rendering starts on Begin.
func NewBarReporter(barW, noteW io.Writer, useColor bool) *BarReporter {
	return &BarReporter{barW: barW, noteW: noteW, useColor: useColor}
}

// Begin starts rendering a bar for total files.
func (r *BarReporter) Begin(total int) {
	frames := spinnerFrames
	if r.useColor {
		green := color.New(color.FgGreen)
		green.EnableColor()
		frames = make([]string, len(spinnerFrames))
		for i, frame := range spinnerFrames {
			frames[i] = green.Sprint(frame)
		}
	}

	r.progress = mpb.New(
		mpb.WithOutput(r.barW),
		mpb.WithWidth(barWidth),
	)
	r.bar = r.progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Spinner(frames),
			decor.Elapsed(decor.ET_STYLE_HHMMSS, decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d/%d", decor.WCSyncSpace),
			decor.OnComplete(decor.Any(r.currentLabel, decor.WCSyncSpaceR), "renaming complete"),
		),
	)
}

// SetLabel names the file shown next to the bar.
func (r *BarReporter) SetLabel(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.label = label
}

// Notef buffers an outcome line until Finish. Writing it mid-run would
// tear the bar rendering.
func (r *BarReporter) Notef(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, fmt.Sprintf(format, args...))
}

// Increment marks the current file as processed.
func (r *BarReporter) Increment() {
	if r.bar != nil {
		r.bar.Increment()
	}
}

// Finish completes the bar, waits for the final render and flushes the
// buffered outcome lines.
func (r *BarReporter) Finish() {
	if r.progress != nil {
		if r.bar != nil && !r.bar.Completed() {
			r.bar.SetTotal(-1, true)
		}
		r.progress.Wait()
	}

	r.mu.Lock()
	notes := r.notes
	r.notes = nil
	r.mu.Unlock()

	for _, note := range notes {
		fmt.Fprintln(r.noteW, note)
	}
}

func (r *BarReporter) currentLabel(_ decor.Statistics) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.label
}
