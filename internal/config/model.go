package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Profile is the unified, format-agnostic representation of everything that
// tunes code generation.
type Profile struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
	// MaxDepth bounds body nesting during statement emission.
	MaxDepth int
	// MaxSteps bounds the number of blocks emitted for a single actor.
	MaxSteps int
	// Workers is the number of actors generated concurrently.
	Workers int

	// LoopVariables names the counters of nested counting loops, outermost first.
	LoopVariables []string

	// FreeVariables lists string literals that are emitted as bare
	// identifiers instead of quoted strings.
	// Only the default loop counter names belong here.
	FreeVariables []string

	// FallbackVariables are injected into every actor's declarations with the
	// lowest priority. An empty slice disables the injection.
	//
	// Compatibility shim. Whether existing projects depend on it is unconfirmed.
	FallbackVariables []Variable

	// SeedList gives one reserved list name a built-in initial sequence.
	//
	// Compatibility shim. Whether existing projects depend on it is unconfirmed.
	SeedList SeedList
}

// Variable is a named initial value.
type Variable struct {
	Name  string
	Value cty.Value
}

// SeedList defines the reserved list and the values it is seeded with when it
// has no initial values of its own.
type SeedList struct {
	Name   string
	Values []cty.Value
}

// Default limits and shim values.
const (
	DefaultIndentWidth  = 4
	DefaultMaxDepth     = 256
	DefaultMaxSteps     = 100000
	DefaultWorkers      = 4
	DefaultSeedListName = "numbers"
)

// DefaultProfile returns a freshly allocated profile holding the built-in defaults.
func DefaultProfile() *Profile {
	seed, err := gocty.ToCtyValue([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, cty.List(cty.Number))
	if err != nil {
		// The input is a literal of a statically known type.
		panic(fmt.Errorf("building default seed list: %w", err))
	}

	return &Profile{
		IndentWidth:   DefaultIndentWidth,
		MaxDepth:      DefaultMaxDepth,
		MaxSteps:      DefaultMaxSteps,
		Workers:       DefaultWorkers,
		LoopVariables: []string{"i", "j", "k"},
		FreeVariables: []string{"i", "j", "sum"},
		FallbackVariables: []Variable{
			{Name: "i", Value: cty.NumberIntVal(0)},
			{Name: "j", Value: cty.NumberIntVal(0)},
			{Name: "sum", Value: cty.NumberIntVal(0)},
		},
		SeedList: SeedList{
			Name:   DefaultSeedListName,
			Values: seed.AsValueSlice(),
		},
	}
}

// Validate reports the first setting that cannot drive generation.
func (p *Profile) Validate() error {
	switch {
	case p.IndentWidth < 0:
		return fmt.Errorf("indent_width must be non-negative, got %d", p.IndentWidth)
	case p.MaxDepth <= 0:
		return fmt.Errorf("max_depth must be positive, got %d", p.MaxDepth)
	case p.MaxSteps <= 0:
		return fmt.Errorf("max_steps must be positive, got %d", p.MaxSteps)
	case p.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", p.Workers)
	case len(p.LoopVariables) == 0:
		return fmt.Errorf("loop_variables must name at least one counter")
	}
	for _, v := range p.FallbackVariables {
		if v.Name == "" {
			return fmt.Errorf("fallback variable with empty name")
		}
		if v.Value == cty.NilVal || !v.Value.Type().IsPrimitiveType() {
			return fmt.Errorf("fallback variable %q must have a string, number or bool value", v.Name)
		}
	}
	return nil
}

// IsFreeVariable reports whether a string literal is on the free-variable allow-list.
func (p *Profile) IsFreeVariable(text string) bool {
	for _, name := range p.FreeVariables {
		if name == text {
			return true
		}
	}
	return false
}
