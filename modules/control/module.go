package control

import (
	"fmt"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/graph"
	"github.com/Jvavscratch/utils/modules/events"
)

const category = "control"

// Module implements the codegen.Module interface for this package.
type Module struct{}

// Repeat emits a counting loop. Counter names follow the nesting level.
func Repeat(c *codegen.Context, b *graph.Block, depth int) error {
	v := c.PushLoop()
	defer c.PopLoop()
	header := fmt.Sprintf("for (var %s = 0; %s < %s; %s++)", v, v, c.Input(b, "TIMES"), v)
	return c.Block(depth, header, b.Substack("SUBSTACK"))
}

// Forever emits an unconditional loop.
func Forever(c *codegen.Context, b *graph.Block, depth int) error {
	return c.Block(depth, "while (true)", b.Substack("SUBSTACK"))
}

// While emits a pre-tested loop.
func While(c *codegen.Context, b *graph.Block, depth int) error {
	return c.Block(depth, "while ("+c.Input(b, "CONDITION")+")", b.Substack("SUBSTACK"))
}

// RepeatUntil emits a loop over the negated condition. A condition that is
// already a negation is unwrapped instead of negated twice.
func RepeatUntil(c *codegen.Context, b *graph.Block, depth int) error {
	var cond string
	if inner, ok := c.InputBlock(b, "CONDITION"); ok && inner.Opcode == "operator_not" {
		cond = c.Input(inner, "OPERAND")
	} else {
		cond = "!(" + c.Input(b, "CONDITION") + ")"
	}
	return c.Block(depth, "while ("+cond+")", b.Substack("SUBSTACK"))
}

// If emits a conditional. The else branch is only written when the block
// has an alternate body.
func If(c *codegen.Context, b *graph.Block, depth int) error {
	c.WriteLine(depth, "if ("+c.Input(b, "CONDITION")+") {")
	if err := c.EmitBody(b.Substack("SUBSTACK"), depth); err != nil {
		return err
	}
	if alt := b.Substack("SUBSTACK2"); alt != "" {
		c.WriteLine(depth, "} else {")
		if err := c.EmitBody(alt, depth); err != nil {
			return err
		}
	}
	c.WriteLine(depth, "}")
	return nil
}

func call(format string, inputs ...string) codegen.StatementFunc {
	return func(c *codegen.Context, b *graph.Block, depth int) error {
		args := make([]any, len(inputs))
		for i, name := range inputs {
			args[i] = c.Input(b, name)
		}
		c.WriteLinef(depth, format, args...)
		return nil
	}
}

func stop(c *codegen.Context, b *graph.Block, depth int) error {
	c.WriteLinef(depth, "stop(%s);", codegen.Quote(b.Field("STOP_OPTION")))
	return nil
}

// Register registers the control handlers.
func (m *Module) Register(r *codegen.Registry) {
	r.Register("control_repeat", &codegen.Handler{Category: category, Statement: Repeat})
	r.Register("control_forever", &codegen.Handler{Category: category, Statement: Forever})
	r.Register("control_while", &codegen.Handler{Category: category, Statement: While})
	r.Register("control_repeat_until", &codegen.Handler{Category: category, Statement: RepeatUntil})
	r.Register("control_if", &codegen.Handler{Category: category, Statement: If})
	r.Register("control_if_else", &codegen.Handler{Category: category, Statement: If})
	r.Register("control_wait", &codegen.Handler{Category: category, Statement: call("wait(%s);", "DURATION")})
	r.Register("control_wait_until", &codegen.Handler{Category: category, Statement: call("waitUntil(%s);", "CONDITION")})
	r.Register("control_stop", &codegen.Handler{Category: category, Statement: stop})
	r.Register("control_create_clone_of", &codegen.Handler{Category: category, Statement: call("createClone(%s);", "CLONE_OPTION")})
	r.Register("control_delete_this_clone", &codegen.Handler{Category: category, Statement: call("deleteThisClone();")})
	r.Register("control_start_as_clone", &codegen.Handler{
		Category:   category,
		ClaimsNext: true,
		Statement: events.Hat(func(*codegen.Context, *graph.Block) string {
			return "startAsClone"
		}),
	})
}
