package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrEmptyLogDirectory is returned when a log directory is configured but blank.
var ErrEmptyLogDirectory = errors.New("log directory cannot be empty")

// File permission constants for the log directory and per-run log files.
const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600
)

// BuildLogFilePath returns the per-run log file path inside dir. The name
// embeds hostname, UTC timestamp and run ID so concurrent runs on shared
// directories never collide.
func BuildLogFilePath(dir, runID string) string {
	filename := fmt.Sprintf("%s_%s_%s.json", Hostname(), time.Now().UTC().Format("20060102T150405Z"), runID)
	return filepath.Join(dir, filename)
}

// Hostname returns the local hostname, or "unknown" if it cannot be determined.
func Hostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}

// OpenLogFile creates the log file for this run. The open is exclusive: a
// pre-existing file means a run ID collision or tampering, and appending to
// it would interleave unrelated runs.
func OpenLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}

// ValidateLogDir ensures the log directory exists and is writable.
func ValidateLogDir(dir string) error {
	if dir == "" {
		return ErrEmptyLogDirectory
	}

	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	f, err := os.OpenFile(testFile, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return fmt.Errorf("cannot write to log directory %s: %w", dir, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close test file: %w", err)
	}
	if err := os.Remove(testFile); err != nil {
		return fmt.Errorf("failed to remove test file: %w", err)
	}

	return nil
}
