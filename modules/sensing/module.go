package sensing

import (
	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/graph"
)

const category = "sensing"

// Module implements the codegen.Module interface for this package.
type Module struct{}

func constant(text string) codegen.ExpressionFunc {
	return func(*codegen.Context, *graph.Block) string { return text }
}

// Register registers the sensing handlers.
func (m *Module) Register(r *codegen.Registry) {
	r.Register("sensing_askandwait", &codegen.Handler{
		Category: category,
		Statement: func(c *codegen.Context, b *graph.Block, depth int) error {
			c.WriteLinef(depth, "ask(%s);", c.Input(b, "QUESTION"))
			return nil
		},
	})
	r.Register("sensing_resettimer", &codegen.Handler{
		Category: category,
		Statement: func(c *codegen.Context, _ *graph.Block, depth int) error {
			c.WriteLine(depth, "resetTimer();")
			return nil
		},
	})
	r.Register("sensing_answer", &codegen.Handler{Category: category, Expression: constant("answer()")})
	r.Register("sensing_timer", &codegen.Handler{Category: category, Expression: constant("timer()")})
	r.Register("sensing_keypressed", &codegen.Handler{
		Category: category,
		Expression: func(c *codegen.Context, b *graph.Block) string {
			return "keyPressed(" + c.Input(b, "KEY_OPTION") + ")"
		},
	})
}
