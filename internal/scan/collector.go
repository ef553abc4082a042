// Package scan walks a directory tree and collects the files eligible for
// renaming. The walk is tolerant: unreadable paths produce warnings instead
// of aborting the run.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joabzzz/r3dy/internal/common"
	"github.com/joabzzz/r3dy/internal/config"
)

// Result holds the outcome of a tree walk.
type Result struct {
	// Files are the absolute paths of matching files, sorted
	// lexicographically for deterministic processing order.
	Files []string

	// Warnings are user-facing messages for paths the walk had to skip,
	// in the order they were encountered.
	Warnings []string
}

// Collector walks directory trees looking for files with the source
// extension.
type Collector struct {
	fs       common.FileSystem
	excludes map[string]struct{}
}

// NewCollector creates a collector walking through the given filesystem.
// Directories whose base name matches an entry of excludeDirs are pruned
// from the walk; the match is case-insensitive and never applies to the
// root itself.
func NewCollector(fsys common.FileSystem, excludeDirs []string) *Collector {
	excludes := make(map[string]struct{}, len(excludeDirs))
	for _, name := range excludeDirs {
		excludes[strings.ToLower(name)] = struct{}{}
	}
	return &Collector{
		fs:       fsys,
		excludes: excludes,
	}
}

// Collect walks the tree under root and returns the files carrying the
// pair's source extension.
//
// Symlinks are never followed into: a symlink whose name matches and whose
// target is a regular file is collected (the link itself gets renamed), a
// symlink to a directory is ignored, and a dangling symlink produces a
// warning. Directory contents are visited depth-first via an explicit
// stack; the final ordering comes from the sort, not the walk.
func (c *Collector) Collect(root common.ResolvedPath, pair config.ExtensionPair) Result {
	stack := []string{root.String()}
	var files []string
	var warnings []string

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := c.fs.Lstat(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Skipping %s: %v", path, err))
			continue
		}

		switch {
		case info.IsDir():
			if path != root.String() && c.excluded(filepath.Base(path)) {
				continue
			}

			entries, err := c.fs.ReadDir(path)
			if err != nil {
				if len(entries) == 0 {
					warnings = append(warnings, fmt.Sprintf("Skipping directory %s: %v", path, err))
					continue
				}
				// A partial listing is still worth walking.
				warnings = append(warnings, fmt.Sprintf("Skipping entry in %s: %v", path, err))
			}
			for _, entry := range entries {
				stack = append(stack, filepath.Join(path, entry.Name()))
			}

		case info.Mode().IsRegular():
			if pair.Matches(filepath.Base(path)) {
				files = append(files, path)
			}

		case info.Mode()&fs.ModeSymlink != 0:
			target, err := c.fs.Stat(path)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("Skipping symlink %s: %v", path, err))
				continue
			}
			if target.Mode().IsRegular() && pair.Matches(filepath.Base(path)) {
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)

	return Result{Files: files, Warnings: warnings}
}

func (c *Collector) excluded(base string) bool {
	_, ok := c.excludes[strings.ToLower(base)]
	return ok
}
