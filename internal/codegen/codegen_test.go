package codegen

import (
	"encoding/json"
	"testing"

	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/graph"
	"github.com/stretchr/testify/require"
)

// testRegistry registers a minimal set of handlers used by the tests in this
// package.
func testRegistry() *Registry {
	r := NewRegistry()
	r.Register("test_say", &Handler{
		Category: "looks",
		Statement: func(c *Context, b *graph.Block, depth int) error {
			c.WriteLinef(depth, "say(%s);", c.Input(b, "MESSAGE"))
			return nil
		},
	})
	r.Register("test_add", &Handler{
		Category: "operators",
		Compound: true,
		Expression: func(c *Context, b *graph.Block) string {
			return c.Operand(b, "A") + " + " + c.Operand(b, "B")
		},
	})
	r.Register("test_wrap", &Handler{
		Category: "control",
		Statement: func(c *Context, b *graph.Block, depth int) error {
			return c.Block(depth, "wrap", b.Substack("SUBSTACK"))
		},
	})
	r.Register("test_loop", &Handler{
		Category: "control",
		Statement: func(c *Context, b *graph.Block, depth int) error {
			v := c.PushLoop()
			defer c.PopLoop()
			return c.Block(depth, "loop "+v, b.Substack("SUBSTACK"))
		},
	})
	r.Register("test_hat", &Handler{
		Category:   "events",
		ClaimsNext: true,
		Statement: func(c *Context, b *graph.Block, depth int) error {
			return c.Block(depth, "when test", b.Next)
		},
	})
	return r
}

func testContext(t *testing.T, blocks string) *Context {
	t.Helper()
	return testContextWithProfile(t, blocks, config.DefaultProfile())
}

func testContextWithProfile(t *testing.T, blocks string, p *config.Profile) *Context {
	t.Helper()
	m, err := graph.New(graph.RawActor{Name: "Sprite1", Blocks: json.RawMessage(blocks)})
	require.NoError(t, err)
	return NewContext(m, testRegistry(), p)
}
