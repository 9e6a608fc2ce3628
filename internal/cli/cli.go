package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Jvavscratch/utils/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("jvav", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
jvav - Converts block-based projects into Jvav source files.

Usage:
  jvav [options] PROJECT_PATH

Arguments:
  PROJECT_PATH
    Path to an extracted project directory or a .sb3 archive.

Options:
`)
		flagSet.PrintDefaults()
	}

	outFlag := flagSet.String("out", app.DefaultOutDir, "Output directory. It is cleared before writing.")
	oFlag := flagSet.String("o", "", "Output directory (shorthand).")
	var profiles []string
	flagSet.Func("profile", "Path to a profile file or directory. May be repeated; later files win.", func(v string) error {
		if v == "" {
			return errors.New("profile path must not be empty")
		}
		profiles = append(profiles, v)
		return nil
	})
	profileFormatFlag := flagSet.String("profile-format", app.DefaultProfileFormat, "Profile file format. Options: 'hcl' or 'toml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 0, "Number of actors generated concurrently. 0 uses the profile value.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No project path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one PROJECT_PATH"}
	}

	outDir := *outFlag
	if *oFlag != "" {
		outDir = *oFlag
	}

	profileFormat := strings.ToLower(*profileFormatFlag)
	if profileFormat != "hcl" && profileFormat != "toml" {
		return nil, false, &ExitError{Code: 2, Message: "invalid profile-format: must be 'hcl' or 'toml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectPath:   flagSet.Arg(0),
		OutDir:        outDir,
		ProfilePaths:  profiles,
		ProfileFormat: profileFormat,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		WorkerCount:   *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
