package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/ctxlog"
	"github.com/Jvavscratch/utils/internal/fsutil"
	"github.com/Jvavscratch/utils/internal/project"
	"github.com/Jvavscratch/utils/internal/transpile"
)

// Extension is the file extension of generated sources.
const Extension = ".jv"

// AssetsDir is the output subdirectory receiving the project's other files.
const AssetsDir = "assets"

// Summary reports what Write produced.
type Summary struct {
	Manifest *Manifest
	// Assets is the number of asset files copied.
	Assets int
}

// Write clears outDir and fills it with one source file per successful
// actor, the manifest and the project's assets. Failed actors are listed in
// the manifest but get no file.
func Write(ctx context.Context, outDir string, proj *project.Project, results []transpile.Result) (*Summary, error) {
	logger := ctxlog.FromContext(ctx)

	if err := fsutil.ClearDir(outDir); err != nil {
		return nil, err
	}

	m := &Manifest{Project: proj.Name, Actors: []string{}, Failed: []string{}, Files: []ManifestActor{}}
	used := make(map[string]bool)
	for _, r := range results {
		m.Actors = append(m.Actors, r.Actor)
		if !r.OK() {
			m.Failed = append(m.Failed, r.Actor)
			continue
		}
		name := fileName(r.Actor, used)
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(r.Text), 0644); err != nil {
			return nil, fmt.Errorf("failed to write actor %s: %w", r.Actor, err)
		}
		m.Files = append(m.Files, ManifestActor{
			Name:        r.Actor,
			File:        name,
			Stage:       r.IsStage,
			Scripts:     r.Entries,
			Diagnostics: len(r.Diagnostics),
		})
		logger.Debug("Actor written.", "actor", r.Actor, "file", name)
	}

	if err := os.WriteFile(filepath.Join(outDir, ManifestName), m.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	nested := nestedDir(proj.Dir, outDir)
	assets, err := fsutil.CopyTree(proj.Dir, filepath.Join(outDir, AssetsDir), func(rel string) bool {
		return rel == project.DescriptorName || rel == nested
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Assets copied.", "count", assets)

	return &Summary{Manifest: m, Assets: assets}, nil
}

// fileName derives a unique file name for an actor.
func fileName(actor string, used map[string]bool) string {
	base := codegen.Identifier(actor)
	name := base + Extension
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s_%d%s", base, n, Extension)
	}
	used[strings.ToLower(name)] = true
	return name
}

// nestedDir returns the slash-separated path of outDir relative to projectDir
// when outDir lies below it, and "" otherwise.
func nestedDir(projectDir, outDir string) string {
	src, err := filepath.Abs(projectDir)
	if err != nil {
		return ""
	}
	dst, err := filepath.Abs(outDir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(src, dst)
	if err != nil || !filepath.IsLocal(rel) {
		return ""
	}
	return filepath.ToSlash(rel)
}
