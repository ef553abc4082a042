// Package cli assembles the command-line surface of r3dy: flag parsing,
// usage text and the wiring between configuration, logging, the tree
// walk and the rename pass.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	goVersion "go.hein.dev/go-version"

	"github.com/joabzzz/r3dy/internal/common"
	"github.com/joabzzz/r3dy/internal/config"
	"github.com/joabzzz/r3dy/internal/logging"
	"github.com/joabzzz/r3dy/internal/progress"
	"github.com/joabzzz/r3dy/internal/rename"
	"github.com/joabzzz/r3dy/internal/scan"
	"github.com/joabzzz/r3dy/internal/terminal"
)

const usageText = `Usage: r3dy [--invert] [path]

Renames .NEV files to .R3D (or vice versa with --invert) within the given path.`

// options holds the flag values of one invocation.
type options struct {
	invert     bool
	dryRun     bool
	configPath string
	logDir     string
	logLevel   string
}

// Execute runs the r3dy command against the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the r3dy command. Every call returns a fresh
// command, so invocations never share flag state.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "r3dy [--invert] [path]",
		Short:   "Renames .NEV files to .R3D (or vice versa) across a directory tree",
		Version: goVersion.FuncWithOutput(false, version, commit, date, "json"),
		Args:    checkArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.invert, "invert", false, "rename .R3D files back to .NEV")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "report what would be renamed without touching any file")
	flags.StringVar(&opts.configPath, "config", "", "load settings from a TOML file")
	flags.StringVar(&opts.logDir, "log-dir", "", "write a JSON log of the run into this directory")
	flags.StringVar(&opts.logLevel, "log-level", "", `console log level: debug, info, warn or error (default "warn")`)

	cmd.SetVersionTemplate("{{.Version}}")
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		// A leading blank line separates the usage block from the error
		// message printed above it.
		fmt.Fprintln(c.OutOrStderr())
		writeUsage(c.OutOrStderr(), c)
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		writeUsage(c.OutOrStdout(), c)
	})

	return cmd
}

// checkArgs accepts at most one positional argument, the root path.
func checkArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("Unexpected argument: %s", args[1])
	}
	return nil
}

func writeUsage(w io.Writer, c *cobra.Command) {
	fmt.Fprintf(w, "%s\n\nOptions:\n%s", usageText, c.Flags().FlagUsages())
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	runID := logging.GenerateRunID()

	cfg, err := buildConfig(args, opts)
	if err != nil {
		return &logging.PreExecutionError{
			Type:      logging.ErrorTypeConfig,
			Component: "config",
			RunID:     runID,
			Err:       err,
		}
	}

	capabilities := terminal.NewCapabilities(terminal.Options{})

	cleanup, err := logging.Setup(logging.SetupConfig{
		Level:         cfg.LogLevel,
		LogDir:        cfg.LogDir,
		RunID:         runID,
		Capabilities:  capabilities,
		ConsoleWriter: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer cleanup()

	pair := cfg.Extensions()
	slog.Info("Starting rename run",
		"root", cfg.Root.String(),
		"source_ext", pair.Source,
		"target_ext", pair.Target,
		"invert", cfg.Invert,
		"dry_run", cfg.DryRun,
	)

	fsys := common.NewDefaultFileSystem()
	collector := scan.NewCollector(fsys, cfg.ExcludeDirs)
	result := collector.Collect(cfg.Root, pair)

	for _, warning := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), warning)
		slog.Debug("Walk warning", "message", warning)
	}

	if len(result.Files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No .%s files found under %s\n", pair.Source, cfg.Root)
		slog.Info("No matching files", "root", cfg.Root.String(), "source_ext", pair.Source)
		return nil
	}

	reporter := progress.New(capabilities, cmd.OutOrStdout(), cmd.ErrOrStderr())
	executor := rename.NewExecutor(fsys, reporter, cfg.DryRun)
	summary := executor.Execute(result.Files, pair, cfg.Root)

	fmt.Fprintln(cmd.OutOrStdout(), summary.Line())
	for _, failure := range summary.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "Could not rename %s: %s\n", failure.Path, failure.Reason)
	}

	// Individual rename failures are reported but never change the exit
	// code; only configuration and setup errors do.
	return nil
}

// buildConfig merges the configuration file, the flags and the resolved
// root path into one immutable run configuration. Flags win over file
// settings.
func buildConfig(args []string, opts *options) (*config.Config, error) {
	cfg := &config.Config{
		Invert:   opts.invert,
		DryRun:   opts.dryRun,
		LogLevel: config.DefaultLogLevel,
	}

	if opts.configPath != "" {
		fileCfg, err := config.NewLoader().Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg.ExcludeDirs = fileCfg.Scan.ExcludeDirs
		cfg.LogDir = fileCfg.Log.Dir
		if fileCfg.Log.Level != "" {
			level, err := config.ParseLogLevel(fileCfg.Log.Level)
			if err != nil {
				return nil, err
			}
			cfg.LogLevel = level
		}
	}

	if opts.logDir != "" {
		cfg.LogDir = opts.logDir
	}
	if opts.logLevel != "" {
		level, err := config.ParseLogLevel(opts.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	var rootArg string
	if len(args) > 0 {
		rootArg = args[0]
	}
	root, err := config.ResolveRoot(rootArg)
	if err != nil {
		return nil, err
	}
	cfg.Root = root

	return cfg, nil
}
