package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *codegen.Registry
	profile  *config.Profile
	config   *Config
}

// NewApp is the constructor for the main application. It loads the
// generation profile and registers the opcode modules; with no modules
// given, every core module is registered.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...codegen.Module) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	profile, err := loader.Load(ctx, appConfig.ProfilePaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if appConfig.WorkerCount > 0 {
		profile.Workers = appConfig.WorkerCount
	}
	logger.Debug("Profile loaded.", "workers", profile.Workers, "indent_width", profile.IndentWidth)

	reg := codegen.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.RegisterModules(modules...)
	logger.Debug("All opcode modules registered.", "modules", len(modules), "opcodes", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		profile:  profile,
		config:   appConfig,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *codegen.Registry {
	return a.registry
}

// Profile returns the loaded generation profile.
func (a *App) Profile() *config.Profile {
	return a.profile
}
