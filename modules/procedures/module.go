package procedures

import (
	"strings"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/graph"
)

const category = "my blocks"

// Module implements the codegen.Module interface for this package.
type Module struct{}

// Definition emits "function <name>(<params>) {" followed by the
// definition's next chain as the body. Warp procedures are preceded by a
// marker comment.
func Definition(c *codegen.Context, b *graph.Block, depth int) error {
	name, params := "procedure", []string(nil)
	if proto, ok := c.InputBlock(b, "custom_block"); ok {
		name = codegen.ProcedureName(proto.Mutation.ProcCode)
		for _, p := range proto.Mutation.ArgumentNames {
			params = append(params, codegen.Identifier(p))
		}
		if proto.Mutation.Warp {
			c.WriteLine(depth, "// run without screen refresh")
		}
	}
	return c.Block(depth, "function "+name+"("+strings.Join(params, ", ")+")", b.Next)
}

// Call emits "<name>(<args>);" with arguments in declaration order.
func Call(c *codegen.Context, b *graph.Block, depth int) error {
	args := make([]string, len(b.Mutation.ArgumentIDs))
	for i, id := range b.Mutation.ArgumentIDs {
		args[i] = c.Input(b, id)
	}
	c.WriteLinef(depth, "%s(%s);", codegen.ProcedureName(b.Mutation.ProcCode), strings.Join(args, ", "))
	return nil
}

func argument(_ *codegen.Context, b *graph.Block) string {
	return codegen.Identifier(b.Field("VALUE"))
}

// Register registers the custom block handlers.
func (m *Module) Register(r *codegen.Registry) {
	r.Register("procedures_definition", &codegen.Handler{Category: category, ClaimsNext: true, Statement: Definition})
	r.Register("procedures_call", &codegen.Handler{Category: category, Statement: Call})
	r.Register("argument_reporter_string_number", &codegen.Handler{Category: category, Expression: argument})
	r.Register("argument_reporter_boolean", &codegen.Handler{Category: category, Expression: argument})
}
