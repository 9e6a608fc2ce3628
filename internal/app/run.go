package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jvavscratch/utils/internal/ctxlog"
	"github.com/Jvavscratch/utils/internal/project"
	"github.com/Jvavscratch/utils/internal/scaffold"
	"github.com/Jvavscratch/utils/internal/transpile"
)

// ErrPartialFailure is returned when at least one actor could not be
// generated. Every other actor has been written.
var ErrPartialFailure = errors.New("some actors failed")

// Run loads the project, generates every actor and writes the output
// project. Input errors abort before anything is written.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	proj, err := project.Load(ctx, a.config.ProjectPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := proj.Close(); err != nil {
			a.logger.Warn("Failed to remove extracted project.", "error", err)
		}
	}()
	a.logger.Info("Project loaded.", "name", proj.Name, "actors", len(proj.Actors))

	results := transpile.Run(ctx, proj.Actors, a.registry, a.profile)
	for _, r := range results {
		if !r.OK() {
			continue
		}
		a.logger.Info("Actor generated.", "actor", r.Actor, "scripts", r.Entries, "declarations", r.Declarations, "diagnostics", len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			a.logger.Debug("Recovered during generation.", "actor", r.Actor, "diagnostic", d.String())
		}
	}

	summary, err := scaffold.Write(ctx, a.config.OutDir, proj, results)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Info("Output written.", "dir", a.config.OutDir, "files", len(summary.Manifest.Files), "assets", summary.Assets)

	failed := transpile.Failed(results)
	if len(failed) == 0 {
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	msgs := make([]string, len(failed))
	for i, r := range failed {
		msgs[i] = fmt.Sprintf("%s: %v", r.Actor, r.Err)
	}
	return fmt.Errorf("%w (%d of %d): %s", ErrPartialFailure, len(failed), len(results), strings.Join(msgs, "; "))
}
