package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultColorDetector_SupportsColor(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected bool
	}{
		{"xterm supports color", "xterm", true},
		{"xterm-256color supports color", "xterm-256color", true},
		{"screen supports color", "screen", true},
		{"screen-256color supports color", "screen-256color", true},
		{"tmux supports color", "tmux", true},
		{"rxvt-unicode supports color", "rxvt-unicode", true},
		{"vt100 supports color", "vt100", true},
		{"linux console supports color", "linux", true},
		{"case is ignored", "XTERM", true},
		{"surrounding whitespace is ignored", " xterm ", true},
		{"dumb terminal has no color", "dumb", false},
		{"empty TERM has no color", "", false},
		{"unknown terminal defaults to no color", "fancyterm", false},
		{"prefix match requires a dash", "xterm2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, map[string]string{"TERM": tt.term})

			detector := NewColorDetector()
			assert.Equal(t, tt.expected, detector.SupportsColor())
		})
	}
}

func TestUserPreference_SupportsColor(t *testing.T) {
	tests := []struct {
		name     string
		options  PreferenceOptions
		envVars  map[string]string
		expected bool
	}{
		{
			name:     "force color flag wins over NO_COLOR",
			options:  PreferenceOptions{ForceColor: true},
			envVars:  map[string]string{"NO_COLOR": "1"},
			expected: true,
		},
		{
			name:     "disable color flag wins over CLICOLOR_FORCE",
			options:  PreferenceOptions{DisableColor: true},
			envVars:  map[string]string{"CLICOLOR_FORCE": "1"},
			expected: false,
		},
		{
			name:     "CLICOLOR_FORCE wins over NO_COLOR",
			envVars:  map[string]string{"CLICOLOR_FORCE": "1", "NO_COLOR": ""},
			expected: true,
		},
		{
			name:     "NO_COLOR disables color",
			envVars:  map[string]string{"NO_COLOR": ""},
			expected: false,
		},
		{
			name:     "no explicit preference means no color",
			envVars:  map[string]string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, tt.envVars)

			pref := NewUserPreference(tt.options)
			assert.Equal(t, tt.expected, pref.SupportsColor())
		})
	}
}

func TestUserPreference_HasExplicitPreference(t *testing.T) {
	tests := []struct {
		name     string
		options  PreferenceOptions
		envVars  map[string]string
		expected bool
	}{
		{
			name:     "force color flag is explicit",
			options:  PreferenceOptions{ForceColor: true},
			envVars:  map[string]string{},
			expected: true,
		},
		{
			name:     "disable color flag is explicit",
			options:  PreferenceOptions{DisableColor: true},
			envVars:  map[string]string{},
			expected: true,
		},
		{
			name:     "truthy CLICOLOR_FORCE is explicit",
			envVars:  map[string]string{"CLICOLOR_FORCE": "1"},
			expected: true,
		},
		{
			name:     "CLICOLOR_FORCE=0 is not explicit",
			envVars:  map[string]string{"CLICOLOR_FORCE": "0"},
			expected: false,
		},
		{
			name:     "empty NO_COLOR is explicit",
			envVars:  map[string]string{"NO_COLOR": ""},
			expected: true,
		},
		{
			name:     "CLICOLOR is not explicit",
			envVars:  map[string]string{"CLICOLOR": "1"},
			expected: false,
		},
		{
			name:     "nothing set",
			envVars:  map[string]string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, tt.envVars)

			pref := NewUserPreference(tt.options)
			assert.Equal(t, tt.expected, pref.HasExplicitPreference())
		})
	}
}
