package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Jvavscratch/utils/internal/app"
	"github.com/Jvavscratch/utils/internal/cli"
	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/hcl"
	"github.com/Jvavscratch/utils/internal/toml"
)

// main is the entrypoint for the jvav transpiler.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// A misbehaving opcode module panics on registration.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	jvavApp, err := app.NewApp(outW, appConfig, profileLoader(appConfig.ProfileFormat))
	if err != nil {
		return err
	}
	return jvavApp.Run(context.Background())
}

// profileLoader returns the concrete loader for a validated profile format.
func profileLoader(format string) config.Loader {
	if format == "toml" {
		return toml.NewLoader()
	}
	return hcl.NewLoader()
}
