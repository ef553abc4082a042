// Package rename performs the extension renames on the files a tree walk
// collected, and aggregates the outcome.
package rename

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joabzzz/r3dy/internal/common"
)

// Failure records one file that could not be renamed.
type Failure struct {
	// Path is the display path of the file, relative to the scan root
	// when it lives under it.
	Path string

	// Reason is the operating system error text.
	Reason string
}

// Summary aggregates the outcome of a rename pass.
type Summary struct {
	Converted int
	Skipped   int
	Failures  []Failure

	// DryRun marks a pass that only reported what it would do.
	DryRun bool
}

// Failed returns the number of files that could not be renamed.
func (s Summary) Failed() int {
	return len(s.Failures)
}

// Line formats the one-line result printed after a run, for example
// "Converted 3 files (skipped: 1, failed: 0)". A dry run switches the
// verb to the conditional.
func (s Summary) Line() string {
	verb := "Converted"
	if s.DryRun {
		verb = "Would convert"
	}
	plural := "s"
	if s.Converted == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s %d file%s (skipped: %d, failed: %d)",
		verb, s.Converted, plural, s.Skipped, s.Failed())
}

// DisplayPath returns path relative to root for user-facing output. A
// path outside the root keeps its full form.
func DisplayPath(root common.ResolvedPath, path string) string {
	rel, err := filepath.Rel(root.String(), path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
