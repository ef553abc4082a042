// Package terminal detects terminal capabilities: whether the process is
// attached to an interactive terminal and whether color output should be
// enabled. The renamer uses it to choose between the live progress bar and
// plain line output, and to gate colored console logging.
package terminal

import (
	"os"
	"strings"
)

// Options bundles the overrides for capability detection.
type Options struct {
	// PreferenceOptions for color settings
	PreferenceOptions PreferenceOptions
	// DetectorOptions for interactive detection
	DetectorOptions DetectorOptions
}

// Capabilities reports what the attached terminal can do.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	HasExplicitUserPreference() bool
}

// DefaultCapabilities implements Capabilities by combining interactive
// detection, color detection and user preference into one view.
type DefaultCapabilities struct {
	interactiveDetector InteractiveDetector
	colorDetector       ColorDetector
	userPreference      *UserPreference
}

// NewCapabilities creates a new Capabilities instance with the given options.
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		interactiveDetector: NewInteractiveDetector(options.DetectorOptions),
		colorDetector:       NewColorDetector(),
		userPreference:      NewUserPreference(options.PreferenceOptions),
	}
}

// IsInteractive returns true if the current environment should be treated
// as interactive.
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.interactiveDetector.IsInteractive()
}

// SupportsColor returns true if color output should be enabled.
//
// Resolution order: explicit user preference (flags, CLICOLOR_FORCE,
// NO_COLOR), then terminal capability when interactive, then CLICOLOR.
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.userPreference.HasExplicitPreference() {
		return c.userPreference.SupportsColor()
	}

	if !c.IsInteractive() || !c.colorDetector.SupportsColor() {
		return false
	}

	// CLICOLOR only applies when a terminal is attached.
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	return true
}

// HasExplicitUserPreference returns true if the user explicitly chose a
// color mode through command line options or environment variables.
func (c *DefaultCapabilities) HasExplicitUserPreference() bool {
	return c.userPreference.HasExplicitPreference()
}

// isTruthy reports whether value is "1", "true" or "yes" (case insensitive).
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
