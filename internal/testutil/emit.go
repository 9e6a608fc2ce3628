package testutil

import (
	"encoding/json"
	"testing"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/graph"
	"github.com/stretchr/testify/require"
)

// NewContext builds a generation context over a JSON block map with the
// given modules registered and the default profile.
func NewContext(t *testing.T, blocks string, modules ...codegen.Module) *codegen.Context {
	t.Helper()
	m, err := graph.New(graph.RawActor{Name: "Sprite1", Blocks: json.RawMessage(blocks)})
	require.NoError(t, err)
	reg := codegen.NewRegistry().RegisterModules(modules...)
	return codegen.NewContext(m, reg, config.DefaultProfile())
}

// EmitEntries emits every entry chain of the block map, without the
// declaration preamble, and returns the resulting lines.
func EmitEntries(t *testing.T, blocks string, modules ...codegen.Module) []string {
	t.Helper()
	c := NewContext(t, blocks, modules...)
	for _, id := range c.Model.EntryPoints() {
		require.NoError(t, c.EmitChain(id, 0))
	}
	return c.Lines()
}

// Expression renders a single reporter of the block map.
func Expression(t *testing.T, blocks, id string, modules ...codegen.Module) string {
	t.Helper()
	return NewContext(t, blocks, modules...).Expression(id)
}
