// Package config holds the run configuration for the renamer: the resolved
// scan root, the direction of the extension swap, and the optional settings
// loaded from a TOML file. Command line flags win over file settings, which
// win over the defaults.
package config

import (
	"log/slog"
	"strings"

	"github.com/joabzzz/r3dy/internal/common"
)

// Extension names without the leading dot. The scan matches the source
// extension case-insensitively; renamed files always get the canonical
// uppercase target extension.
const (
	SourceExtension = "NEV"
	TargetExtension = "R3D"
)

// DefaultLogLevel is the console log level when neither the config file nor
// the --log-level flag sets one. Warn keeps the console output limited to
// the rename narration itself.
const DefaultLogLevel = slog.LevelWarn

// Config is the fully resolved configuration for a single run.
type Config struct {
	// Root is the canonicalized directory the scan starts from.
	Root common.ResolvedPath

	// Invert reverses the rename direction (R3D back to NEV).
	Invert bool

	// DryRun reports what would be renamed without touching the filesystem.
	DryRun bool

	// ExcludeDirs lists directory base names that the scan skips entirely.
	ExcludeDirs []string

	// LogDir is the directory for per-run JSON log files. Empty disables
	// file logging.
	LogDir string

	// LogLevel is the minimum level for console log output.
	LogLevel slog.Level
}

// Extensions returns the extension pair for this run's direction.
func (c *Config) Extensions() ExtensionPair {
	return NewExtensionPair(c.Invert)
}

// ExtensionPair is one rename direction: files carrying Source get renamed
// to carry Target.
type ExtensionPair struct {
	Source string
	Target string
}

// NewExtensionPair returns the forward pair (NEV to R3D), or the reverse
// pair when invert is set.
func NewExtensionPair(invert bool) ExtensionPair {
	if invert {
		return ExtensionPair{Source: TargetExtension, Target: SourceExtension}
	}
	return ExtensionPair{Source: SourceExtension, Target: TargetExtension}
}

// Matches reports whether the base name carries the source extension,
// compared case-insensitively.
func (p ExtensionPair) Matches(name string) bool {
	ext, ok := splitExtension(name)
	return ok && strings.EqualFold(ext, p.Source)
}

// TargetName returns the base name with its extension replaced by the
// target extension. The stem keeps its original case; only the extension
// is rewritten.
func (p ExtensionPair) TargetName(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name
	}
	return name[:idx+1] + p.Target
}

// splitExtension returns the extension of a base name, defined the way
// path stems usually are: the part after the last dot, except that a
// leading dot marks a hidden file rather than an extension boundary.
func splitExtension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}
