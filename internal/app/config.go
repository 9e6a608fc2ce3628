package app

import (
	"errors"
	"path/filepath"
)

// DefaultOutDir is used when no output directory is configured.
const DefaultOutDir = "out"

// DefaultProfileFormat is the profile file format used when none is configured.
const DefaultProfileFormat = "hcl"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath   string   // project directory or .sb3 archive
	OutDir        string   // cleared and rewritten on every run
	ProfilePaths  []string // profile files or directories
	ProfileFormat string   // "hcl" or "toml"

	LogFormat   string
	LogLevel    string
	WorkerCount int // 0 keeps the profile's value
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	if cfg.ProfileFormat == "" {
		cfg.ProfileFormat = DefaultProfileFormat
	}
	if cfg.WorkerCount < 0 {
		return nil, errors.New("WorkerCount must not be negative")
	}

	project, err := filepath.Abs(cfg.ProjectPath)
	if err != nil {
		return nil, err
	}
	out, err := filepath.Abs(cfg.OutDir)
	if err != nil {
		return nil, err
	}
	if within(out, project) {
		return nil, errors.New("OutDir must not contain the project, it is cleared on every run")
	}
	if within(project, out) {
		return nil, errors.New("OutDir must not be inside the project, its assets are copied into it")
	}

	return &cfg, nil
}

// within reports whether path is dir itself or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && (rel == "." || filepath.IsLocal(rel))
}
