package terminal

import (
	"os"
	"strings"
)

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors. Declared at package scope to avoid reallocating the
// slice on every SupportsColor call.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// ColorDetector reports whether the attached terminal can render color.
type ColorDetector interface {
	SupportsColor() bool
}

// DefaultColorDetector detects color support from the TERM variable.
type DefaultColorDetector struct{}

// NewColorDetector creates a new color detector
func NewColorDetector() ColorDetector {
	return &DefaultColorDetector{}
}

// SupportsColor returns true if TERM names a color-capable terminal.
// Unknown terminals default to no color; emitting escape sequences to a
// terminal that cannot render them is worse than missing color.
func (d *DefaultColorDetector) SupportsColor() bool {
	term := os.Getenv("TERM")
	if term == "" {
		return false
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "dumb" {
		return false
	}

	for _, colorTerm := range colorTerminals {
		if term == colorTerm || strings.HasPrefix(term, colorTerm+"-") {
			return true
		}
	}

	return false
}

// PreferenceOptions contains command-line options for terminal preferences
type PreferenceOptions struct {
	ForceColor   bool // Force color output regardless of environment
	DisableColor bool // Disable color output regardless of environment
}

// UserPreference resolves explicit color choices from command line options
// and the CLICOLOR_FORCE / NO_COLOR environment variables.
type UserPreference struct {
	options PreferenceOptions
}

// NewUserPreference creates a new UserPreference instance
func NewUserPreference(options PreferenceOptions) *UserPreference {
	return &UserPreference{
		options: options,
	}
}

// SupportsColor returns the explicitly requested color mode. Command line
// options win over CLICOLOR_FORCE, which wins over NO_COLOR. Callers should
// consult HasExplicitPreference first; without an explicit choice this
// returns false.
func (p *UserPreference) SupportsColor() bool {
	if p.options.ForceColor {
		return true
	}
	if p.options.DisableColor {
		return false
	}

	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" && isTruthy(cliColorForce) {
		return true
	}

	// NO_COLOR and the no-preference default both mean no color here.
	return false
}

// HasExplicitPreference returns true if the user chose a color mode through
// command line options, a truthy CLICOLOR_FORCE, or any NO_COLOR setting
// (even an empty one). CLICOLOR is not an explicit preference; it only
// applies in interactive mode.
func (p *UserPreference) HasExplicitPreference() bool {
	if p.options.ForceColor || p.options.DisableColor {
		return true
	}

	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" && isTruthy(cliColorForce) {
		return true
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}

	return false
}
