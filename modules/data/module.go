package data

import (
	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/graph"
)

const category = "variables"

// Module implements the codegen.Module interface for this package.
type Module struct{}

func variable(c *codegen.Context, b *graph.Block) string {
	return c.Names.Variable(b.Field("VARIABLE"))
}

func list(c *codegen.Context, b *graph.Block) string {
	return c.Names.List(b.Field("LIST"))
}

// statement renders "<target><text>;" where text is built from the block.
func statement(render func(c *codegen.Context, b *graph.Block) string) codegen.StatementFunc {
	return func(c *codegen.Context, b *graph.Block, depth int) error {
		c.WriteLine(depth, render(c, b)+";")
		return nil
	}
}

// Register registers the variable and list handlers.
func (m *Module) Register(r *codegen.Registry) {
	r.Register("data_variable", &codegen.Handler{
		Category:   category,
		Expression: func(c *codegen.Context, b *graph.Block) string { return variable(c, b) },
	})
	r.Register("data_listcontents", &codegen.Handler{
		Category:   category,
		Expression: func(c *codegen.Context, b *graph.Block) string { return list(c, b) },
	})
	r.Register("data_setvariableto", &codegen.Handler{
		Category: category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string {
			return variable(c, b) + " = " + c.Input(b, "VALUE")
		}),
	})
	r.Register("data_changevariableby", &codegen.Handler{
		Category: category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string {
			return variable(c, b) + " += " + c.Input(b, "VALUE")
		}),
	})
	r.Register("data_showvariable", &codegen.Handler{
		Category:  category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string { return "showVariable(" + variable(c, b) + ")" }),
	})
	r.Register("data_hidevariable", &codegen.Handler{
		Category:  category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string { return "hideVariable(" + variable(c, b) + ")" }),
	})

	r.Register("data_addtolist", &codegen.Handler{
		Category: category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string {
			return list(c, b) + ".add(" + c.Input(b, "ITEM") + ")"
		}),
	})
	r.Register("data_deleteoflist", &codegen.Handler{
		Category: category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string {
			return list(c, b) + ".delete(" + c.Input(b, "INDEX") + ")"
		}),
	})
	r.Register("data_deletealloflist", &codegen.Handler{
		Category:  category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string { return list(c, b) + ".clear()" }),
	})
	r.Register("data_insertatlist", &codegen.Handler{
		Category: category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string {
			return list(c, b) + ".insert(" + c.Input(b, "INDEX") + ", " + c.Input(b, "ITEM") + ")"
		}),
	})
	r.Register("data_replaceitemoflist", &codegen.Handler{
		Category: category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string {
			return list(c, b) + ".replace(" + c.Input(b, "INDEX") + ", " + c.Input(b, "ITEM") + ")"
		}),
	})
	r.Register("data_showlist", &codegen.Handler{
		Category:  category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string { return "showList(" + list(c, b) + ")" }),
	})
	r.Register("data_hidelist", &codegen.Handler{
		Category:  category,
		Statement: statement(func(c *codegen.Context, b *graph.Block) string { return "hideList(" + list(c, b) + ")" }),
	})

	r.Register("data_itemoflist", &codegen.Handler{
		Category: category,
		Expression: func(c *codegen.Context, b *graph.Block) string {
			return "itemOf(" + list(c, b) + ", " + c.Input(b, "INDEX") + ")"
		},
	})
	r.Register("data_itemnumoflist", &codegen.Handler{
		Category: category,
		Expression: func(c *codegen.Context, b *graph.Block) string {
			return "indexOf(" + list(c, b) + ", " + c.Input(b, "ITEM") + ")"
		},
	})
	r.Register("data_lengthoflist", &codegen.Handler{
		Category:   category,
		Expression: func(c *codegen.Context, b *graph.Block) string { return "lengthOf(" + list(c, b) + ")" },
	})
	r.Register("data_listcontainsitem", &codegen.Handler{
		Category: category,
		Expression: func(c *codegen.Context, b *graph.Block) string {
			return "contains(" + list(c, b) + ", " + c.Input(b, "ITEM") + ")"
		},
	})
}
