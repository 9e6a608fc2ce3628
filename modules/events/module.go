package events

import (
	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/graph"
)

const category = "events"

// Module implements the codegen.Module interface for this package.
type Module struct{}

// header renders the event part of a "when <event> {" line.
type header func(c *codegen.Context, b *graph.Block) string

func named(event string) header {
	return func(*codegen.Context, *graph.Block) string { return event }
}

func withField(event, field string) header {
	return func(c *codegen.Context, b *graph.Block) string {
		return event + "(" + codegen.Quote(b.Field(field)) + ")"
	}
}

var hats = []struct {
	opcode string
	header header
}{
	{"event_whenflagclicked", named("flagClicked")},
	{"event_whenthisspriteclicked", named("spriteClicked")},
	{"event_whenstageclicked", named("stageClicked")},
	{"event_whenkeypressed", withField("keyPressed", "KEY_OPTION")},
	{"event_whenbroadcastreceived", withField("received", "BROADCAST_OPTION")},
	{"event_whenbackdropswitchesto", withField("backdropSwitchesTo", "BACKDROP")},
	{"event_whengreaterthan", func(c *codegen.Context, b *graph.Block) string {
		return "greaterThan(" + codegen.Quote(b.Field("WHENGREATERTHANMENU")) + ", " + c.Input(b, "VALUE") + ")"
	}},
	{"event_whentouchingobject", func(c *codegen.Context, b *graph.Block) string {
		return "touching(" + c.Input(b, "TOUCHINGOBJECTMENU") + ")"
	}},
}

// Hat returns a statement that wraps the block's next chain in a
// "when <event> { ... }" construct.
func Hat(h func(c *codegen.Context, b *graph.Block) string) codegen.StatementFunc {
	return func(c *codegen.Context, b *graph.Block, depth int) error {
		return c.Block(depth, "when "+h(c, b), b.Next)
	}
}

func broadcast(call string) codegen.StatementFunc {
	return func(c *codegen.Context, b *graph.Block, depth int) error {
		c.WriteLinef(depth, "%s(%s);", call, c.Input(b, "BROADCAST_INPUT"))
		return nil
	}
}

// Register registers the event handlers.
func (m *Module) Register(r *codegen.Registry) {
	for _, hat := range hats {
		r.Register(hat.opcode, &codegen.Handler{
			Category:   category,
			ClaimsNext: true,
			Statement:  Hat(hat.header),
		})
	}
	r.Register("event_broadcast", &codegen.Handler{Category: category, Statement: broadcast("broadcast")})
	r.Register("event_broadcastandwait", &codegen.Handler{Category: category, Statement: broadcast("broadcastAndWait")})
}
