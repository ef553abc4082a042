package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joabzzz/r3dy/internal/terminal"
)

// SetupConfig holds all configuration for logger setup.
type SetupConfig struct {
	// Level is the minimum level for console output. The per-run log file
	// always records everything.
	Level slog.Level

	// LogDir is the directory for per-run JSON log files. Empty disables
	// file logging.
	LogDir string

	// RunID identifies this run in log records and the log file name.
	RunID string

	// Capabilities provides terminal feature detection. Defaults to
	// environment-based detection when nil.
	Capabilities terminal.Capabilities

	// ConsoleWriter is the destination for console log lines. Defaults to
	// os.Stderr, keeping stdout free for results and the progress bar.
	ConsoleWriter io.Writer
}

// Setup installs the default slog logger: an interactive colored handler and
// a conditional text handler sharing the console (exactly one of them emits
// any record), plus an optional JSON handler writing a per-run file.
//
// Setup must be called once during startup, before any logging occurs. The
// returned cleanup function closes the log file and should run at exit.
func Setup(config SetupConfig) (func(), error) {
	capabilities := config.Capabilities
	if capabilities == nil {
		capabilities = terminal.NewCapabilities(terminal.Options{})
	}

	consoleWriter := config.ConsoleWriter
	if consoleWriter == nil {
		consoleWriter = os.Stderr
	}

	var handlers []slog.Handler

	// 1. Interactive handler (colored output when a terminal is attached)
	if capabilities.IsInteractive() {
		interactiveHandler, err := NewInteractiveHandler(InteractiveHandlerOptions{
			Level:        config.Level,
			Writer:       consoleWriter,
			Capabilities: capabilities,
			Formatter:    NewDefaultMessageFormatter(),
		})
		if err != nil {
			return nil, &PreExecutionError{
				Type:      ErrorTypeLogSetup,
				Message:   "failed to create interactive handler",
				Component: "logging",
				RunID:     config.RunID,
				Err:       err,
			}
		}
		handlers = append(handlers, interactiveHandler)
	}

	// 2. Conditional text handler (plain console output for pipes and CI)
	conditionalTextHandler, err := NewConditionalTextHandler(ConditionalTextHandlerOptions{
		Level:        config.Level,
		Writer:       consoleWriter,
		Capabilities: capabilities,
	})
	if err != nil {
		return nil, &PreExecutionError{
			Type:      ErrorTypeLogSetup,
			Message:   "failed to create text handler",
			Component: "logging",
			RunID:     config.RunID,
			Err:       err,
		}
	}
	handlers = append(handlers, conditionalTextHandler)

	cleanup := func() {}

	// 3. Machine-readable log handler (per-run JSON file)
	if config.LogDir != "" {
		if err := ValidateLogDir(config.LogDir); err != nil {
			return nil, &PreExecutionError{
				Type:      ErrorTypeLogSetup,
				Message:   "invalid log directory",
				Component: "logging",
				RunID:     config.RunID,
				Err:       err,
			}
		}

		logFile, err := OpenLogFile(BuildLogFilePath(config.LogDir, config.RunID))
		if err != nil {
			return nil, &PreExecutionError{
				Type:      ErrorTypeLogSetup,
				Message:   "failed to create log file",
				Component: "logging",
				RunID:     config.RunID,
				Err:       err,
			}
		}

		jsonHandler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})

		// Attach common attributes
		enrichedHandler := jsonHandler.WithAttrs([]slog.Attr{
			slog.String("hostname", Hostname()),
			slog.Int("pid", os.Getpid()),
			slog.String("run_id", config.RunID),
		})
		handlers = append(handlers, enrichedHandler)

		cleanup = func() {
			if err := logFile.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	}

	slog.SetDefault(slog.New(NewMultiHandler(handlers...)))

	slog.Info("Logger initialized",
		"log_level", config.Level.String(),
		"log_dir", config.LogDir,
		"run_id", config.RunID,
		"interactive_mode", capabilities.IsInteractive(),
		"color_support", capabilities.SupportsColor())

	return cleanup, nil
}
