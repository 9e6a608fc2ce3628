package transpile

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/ctxlog"
	"github.com/Jvavscratch/utils/internal/decls"
	"github.com/Jvavscratch/utils/internal/graph"
)

// Generate produces the source text of a single actor: the declaration
// preamble, a blank line, then every entry chain separated by blank lines.
func Generate(ctx context.Context, raw graph.RawActor, reg *codegen.Registry, p *config.Profile) Result {
	logger := ctxlog.FromContext(ctx).With("actor", raw.Name)
	res := Result{Actor: raw.Name, IsStage: raw.IsStage}

	m, err := graph.New(raw)
	if err != nil {
		res.Err = fmt.Errorf("failed to build graph: %w", err)
		return res
	}
	logger.Debug("Graph built.", "blocks", m.Len())

	if err := m.DetectCycles(); err != nil {
		var cycle *graph.CycleError
		if errors.As(err, &cycle) {
			res.Err = &codegen.OverflowError{Actor: m.Actor, BlockID: cycle.BlockID, Reason: err.Error()}
		} else {
			res.Err = err
		}
		return res
	}

	set := decls.Collect(m, p)
	entries := m.EntryPoints()
	logger.Debug("Declarations and entry points resolved.", "declarations", set.Len(), "entries", len(entries))

	c := codegen.NewContext(m, reg, p)
	c.Names = set.Names()
	for _, line := range set.Lines() {
		c.WriteLine(0, line)
	}
	for i, id := range entries {
		if i > 0 || set.Len() > 0 {
			c.BlankLine()
		}
		if err := c.EmitChain(id, 0); err != nil {
			res.Err = err
			return res
		}
	}

	res.Text = c.String()
	res.Declarations = set.Len()
	res.Entries = len(entries)
	res.Diagnostics = c.Diagnostics()
	return res
}
