package config

import (
	"fmt"
	"log/slog"

	"github.com/pelletier/go-toml/v2"

	"github.com/joabzzz/r3dy/internal/common"
)

// FileConfig mirrors the TOML config file layout.
type FileConfig struct {
	Scan ScanSection `toml:"scan"`
	Log  LogSection  `toml:"log"`
}

// ScanSection configures the directory walk.
type ScanSection struct {
	// ExcludeDirs lists directory base names to skip, matched
	// case-insensitively.
	ExcludeDirs []string `toml:"exclude_dirs"`
}

// LogSection configures logging.
type LogSection struct {
	// Dir enables per-run JSON log files in the given directory.
	Dir string `toml:"dir"`

	// Level sets the console log level (debug, info, warn, error).
	Level string `toml:"level"`
}

// Loader reads and parses config files.
type Loader struct {
	fs common.FileSystem
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return NewLoaderWithFS(common.NewDefaultFileSystem())
}

// NewLoaderWithFS creates a new config loader with a custom FileSystem
func NewLoaderWithFS(fs common.FileSystem) *Loader {
	return &Loader{
		fs: fs,
	}
}

// Load reads and parses the config file at path.
func (l *Loader) Load(path string) (*FileConfig, error) {
	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ParseLogLevel parses a level name from a flag or config file into a
// slog.Level. Accepts debug, info, warn and error in any case.
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}
