package toml

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/ctxlog"
	"github.com/Jvavscratch/utils/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

const extension = ".toml"

// profileFile mirrors one TOML profile file. Pointer fields stay nil when the
// key is absent so that earlier files keep their values.
type profileFile struct {
	IndentWidth       *int           `toml:"indent_width"`
	MaxDepth          *int           `toml:"max_depth"`
	MaxSteps          *int           `toml:"max_steps"`
	Workers           *int           `toml:"workers"`
	LoopVariables     *[]string      `toml:"loop_variables"`
	FreeVariables     *[]string      `toml:"free_variables"`
	FallbackVariables map[string]any `toml:"fallback_variables"`
	SeedList          *seedList      `toml:"seed_list"`
}

type seedList struct {
	Name   *string `toml:"name"`
	Values []any   `toml:"values"`
}

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .toml file under the given paths and applies them, in
// discovery order, on top of config.DefaultProfile.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML profile loader started.", "path_count", len(paths))

	profile := config.DefaultProfile()

	files, err := findFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered TOML profile files.", "count", len(files))

	for _, file := range files {
		var root profileFile
		md, err := toml.DecodeFile(file, &root)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML file %s: %w", file, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("failed to decode TOML file %s: unknown keys %s", file, strings.Join(keys, ", "))
		}
		if err := apply(md, &root, profile); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", file, err)
		}
		logger.Debug("Applied profile file.", "file", file)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}

func findFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			if strings.EqualFold(filepath.Ext(path), extension) {
				add(path)
			}
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, extension)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			add(p)
		}
	}
	return files, nil
}

// apply merges one decoded profile file into the profile.
func apply(md toml.MetaData, f *profileFile, p *config.Profile) error {
	if f.IndentWidth != nil {
		p.IndentWidth = *f.IndentWidth
	}
	if f.MaxDepth != nil {
		p.MaxDepth = *f.MaxDepth
	}
	if f.MaxSteps != nil {
		p.MaxSteps = *f.MaxSteps
	}
	if f.Workers != nil {
		p.Workers = *f.Workers
	}
	if f.LoopVariables != nil {
		p.LoopVariables = append([]string(nil), (*f.LoopVariables)...)
	}
	if f.FreeVariables != nil {
		p.FreeVariables = append([]string(nil), (*f.FreeVariables)...)
	}

	if md.IsDefined("fallback_variables") {
		// Sorted by name, matching the order the HCL format yields.
		vars := make([]config.Variable, 0, len(f.FallbackVariables))
		for _, name := range slices.Sorted(maps.Keys(f.FallbackVariables)) {
			v, err := primitive(f.FallbackVariables[name])
			if err != nil {
				return fmt.Errorf("fallback variable %q: %w", name, err)
			}
			vars = append(vars, config.Variable{Name: name, Value: v})
		}
		p.FallbackVariables = vars
	}

	if f.SeedList != nil {
		if f.SeedList.Name != nil {
			p.SeedList.Name = *f.SeedList.Name
		}
		if md.IsDefined("seed_list", "values") {
			values := make([]cty.Value, 0, len(f.SeedList.Values))
			for _, raw := range f.SeedList.Values {
				v, err := primitive(raw)
				if err != nil {
					return fmt.Errorf("seed_list.values: %w", err)
				}
				values = append(values, v)
			}
			p.SeedList.Values = values
		}
	}
	return nil
}

// primitive converts a decoded TOML scalar into a cty value.
func primitive(v any) (cty.Value, error) {
	switch t := v.(type) {
	case string:
		return cty.StringVal(t), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	default:
		return cty.NilVal, fmt.Errorf("value must be a string, number or bool, got %T", v)
	}
}
