package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// profileFile is the top-level structure of a profile file. Every attribute is
// optional; an absent attribute keeps the value inherited from earlier files.
// Attributes not listed here are rejected by the decoder.
type profileFile struct {
	IndentWidth       *int           `hcl:"indent_width,optional"`
	MaxDepth          *int           `hcl:"max_depth,optional"`
	MaxSteps          *int           `hcl:"max_steps,optional"`
	Workers           *int           `hcl:"workers,optional"`
	LoopVariables     *[]string      `hcl:"loop_variables,optional"`
	FreeVariables     *[]string      `hcl:"free_variables,optional"`
	FallbackVariables hcl.Expression `hcl:"fallback_variables,optional"`
	SeedList          *seedListBlock `hcl:"seed_list,block"`
}

// seedListBlock represents the `seed_list` block.
type seedListBlock struct {
	Name   *string        `hcl:"name,optional"`
	Values hcl.Expression `hcl:"values,optional"`
}
