package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jvavscratch/utils/internal/ctxlog"
	"github.com/Jvavscratch/utils/internal/graph"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DescriptorName is the file holding the project's actors.
const DescriptorName = "project.json"

// ErrFatalInput is returned when the project cannot be located or its
// descriptor is missing or unreadable. Nothing should be written after it.
var ErrFatalInput = errors.New("fatal input error")

// Project is a loaded project.
type Project struct {
	// Name is the base name of the input path without extension.
	Name string
	// Dir is the directory that holds the descriptor and the assets.
	Dir string
	// Actors are in descriptor order.
	Actors []graph.RawActor

	cleanup func() error
}

// descriptor is the part of project.json this tool reads.
type descriptor struct {
	Targets *[]graph.RawActor `json:"targets"`
}

// Load opens the project at path. A directory must contain project.json; a
// regular file is treated as an .sb3 archive and extracted to a temporary
// directory, which Close removes.
func Load(ctx context.Context, path string) (*Project, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: project path %s: %v", ErrFatalInput, path, err)
	}

	p := &Project{Name: projectName(path)}
	if info.IsDir() {
		p.Dir = path
	} else {
		dir, err := os.MkdirTemp("", "jvav-project-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create extraction directory: %w", err)
		}
		p.cleanup = func() error { return os.RemoveAll(dir) }
		n, err := extract(path, dir)
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("%w: archive %s: %v", ErrFatalInput, path, err)
		}
		logger.Debug("Archive extracted.", "path", path, "files", n)
		p.Dir = dir
	}

	actors, err := readDescriptor(filepath.Join(p.Dir, DescriptorName))
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	p.Actors = actors
	logger.Debug("Project loaded.", "name", p.Name, "actors", len(actors))
	return p, nil
}

// Close releases the temporary extraction directory, if any.
func (p *Project) Close() error {
	if p.cleanup == nil {
		return nil
	}
	err := p.cleanup()
	p.cleanup = nil
	return err
}

// ActorNames returns the actor names in descriptor order.
func (p *Project) ActorNames() []string {
	names := make([]string, len(p.Actors))
	for i, a := range p.Actors {
		names[i] = a.Name
	}
	return names
}

func readDescriptor(path string) ([]graph.RawActor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: descriptor: %v", ErrFatalInput, err)
	}
	defer f.Close()

	actors, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: descriptor %s: %v", ErrFatalInput, path, err)
	}
	return actors, nil
}

// Decode reads a descriptor. A leading UTF-8 or UTF-16 byte order mark is
// honored; without one the input is read as UTF-8.
func Decode(r io.Reader) ([]graph.RawActor, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var d descriptor
	if err := json.NewDecoder(decoded).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}
	if d.Targets == nil {
		return nil, errors.New("descriptor has no targets")
	}
	return *d.Targets, nil
}

func projectName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
