package looks

import (
	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/graph"
)

// Module implements the codegen.Module interface for this package.
type Module struct{}

func speech(name string, timed bool) codegen.StatementFunc {
	return func(c *codegen.Context, b *graph.Block, depth int) error {
		if timed {
			c.WriteLinef(depth, "%s(%s, %s);", name, c.Input(b, "MESSAGE"), c.Input(b, "SECS"))
		} else {
			c.WriteLinef(depth, "%s(%s);", name, c.Input(b, "MESSAGE"))
		}
		return nil
	}
}

// Register registers the speech bubble handlers. Every other looks block
// degrades to a comment.
func (m *Module) Register(r *codegen.Registry) {
	r.Register("looks_say", &codegen.Handler{Category: "looks", Statement: speech("say", false)})
	r.Register("looks_sayforsecs", &codegen.Handler{Category: "looks", Statement: speech("say", true)})
	r.Register("looks_think", &codegen.Handler{Category: "looks", Statement: speech("think", false)})
	r.Register("looks_thinkforsecs", &codegen.Handler{Category: "looks", Statement: speech("think", true)})
}
