package rename

import (
	"log/slog"
	"path/filepath"

	"github.com/joabzzz/r3dy/internal/common"
	"github.com/joabzzz/r3dy/internal/config"
	"github.com/joabzzz/r3dy/internal/progress"
)

// Executor renames collected files to their target extension, reporting
// per-file progress as it goes.
type Executor struct {
	fs       common.FileSystem
	reporter progress.Reporter
	dryRun   bool
}

// NewExecutor creates an executor renaming through the given filesystem.
// In dry-run mode no file is touched; the executor only reports what a
// real pass would do.
func NewExecutor(fsys common.FileSystem, reporter progress.Reporter, dryRun bool) *Executor {
	return &Executor{
		fs:       fsys,
		reporter: reporter,
		dryRun:   dryRun,
	}
}

// Execute renames every file to its name under the pair's target
// extension. A file whose target already exists is skipped, a failed
// rename is recorded and the pass moves on; one bad file never aborts
// the run.
func (e *Executor) Execute(files []string, pair config.ExtensionPair, root common.ResolvedPath) Summary {
	summary := Summary{DryRun: e.dryRun}

	e.reporter.Begin(len(files))
	for _, path := range files {
		rel := DisplayPath(root, path)
		e.reporter.SetLabel(rel)

		target := filepath.Join(filepath.Dir(path), pair.TargetName(filepath.Base(path)))
		relTarget := DisplayPath(root, target)

		if _, err := e.fs.Stat(target); err == nil {
			summary.Skipped++
			e.reporter.Notef("Skipping %s (%s already exists)", rel, relTarget)
			slog.Debug("Rename skipped", "path", path, "target", target, "reason", "target exists")
			e.reporter.Increment()
			continue
		}

		if e.dryRun {
			summary.Converted++
			e.reporter.Notef("Would rename %s to %s", rel, relTarget)
			slog.Debug("Rename planned", "path", path, "target", target)
			e.reporter.Increment()
			continue
		}

		if err := e.fs.Rename(path, target); err != nil {
			summary.Failures = append(summary.Failures, Failure{Path: rel, Reason: err.Error()})
			e.reporter.Notef("Failed to rename %s: %v", rel, err)
			slog.Info("Rename failed", "path", path, "target", target, "error", err)
		} else {
			summary.Converted++
			slog.Debug("Renamed file", "path", path, "target", target)
		}
		e.reporter.Increment()
	}
	e.reporter.Finish()

	slog.Info("Rename pass finished",
		"converted", summary.Converted,
		"skipped", summary.Skipped,
		"failed", summary.Failed(),
		"dry_run", summary.DryRun,
	)

	return summary
}
