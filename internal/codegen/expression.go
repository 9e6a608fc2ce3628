package codegen

import (
	"github.com/Jvavscratch/utils/internal/graph"
	"github.com/zclconf/go-cty/cty"
)

// Expression renders the reporter block with the given id. Missing blocks,
// unknown reporters and reporters that refer back to themselves render as
// Null.
func (c *Context) Expression(id string) string {
	b, ok := c.Model.Block(id)
	if !ok {
		c.record(Unresolved, id, "")
		return Null
	}
	if c.evaluating[id] {
		c.record(Unresolved, id, b.Opcode)
		return Null
	}
	c.evaluating[id] = true
	defer delete(c.evaluating, id)

	if h, ok := c.registry.Lookup(b.Opcode); ok && h.Expression != nil {
		return h.Expression(c, b)
	}
	if text, ok := menuValue(b); ok {
		return text
	}
	c.record(Unsupported, id, b.Opcode)
	return Null
}

// Input renders the named input of b. A plugged-in block wins over the
// inline literal; an empty input renders as Null.
func (c *Context) Input(b *graph.Block, name string) string {
	in := b.Input(name)
	switch {
	case in.Block != "":
		return c.Expression(in.Block)
	case in.Literal != nil:
		return c.Literal(in.Literal)
	default:
		return Null
	}
}

// Operand renders the named input for use inside another operator,
// parenthesizing compound expressions.
func (c *Context) Operand(b *graph.Block, name string) string {
	text := c.Input(b, name)
	if text != Null && c.isCompound(b.Input(name).Block) {
		return "(" + text + ")"
	}
	return text
}

// InputBlock returns the block plugged into the named input.
func (c *Context) InputBlock(b *graph.Block, name string) (*graph.Block, bool) {
	id := b.Input(name).Block
	if id == "" {
		return nil, false
	}
	return c.Model.Block(id)
}

// Literal renders an inline input value. Numeric-looking text becomes a bare
// number and names on the profile's free variable list stay unquoted.
func (c *Context) Literal(lit *graph.Literal) string {
	switch lit.Kind {
	case graph.LiteralVariable, graph.LiteralList:
		if lit.Value.Type() != cty.String || lit.Value.IsNull() {
			return Null
		}
		if lit.Kind == graph.LiteralList {
			return c.Names.List(lit.Value.AsString())
		}
		return c.Names.Variable(lit.Value.AsString())
	}
	if lit.Value.IsNull() || !lit.Value.IsKnown() {
		return Null
	}
	if lit.Value.Type() != cty.String {
		return FormatValue(lit.Value)
	}
	return c.Text(lit.Value.AsString())
}

// Text renders literal text using the literal rules.
func (c *Context) Text(s string) string {
	if n, ok := NumericText(s); ok {
		return n
	}
	if c.Profile.IsFreeVariable(s) {
		return s
	}
	return Quote(s)
}

func (c *Context) isCompound(id string) bool {
	if id == "" {
		return false
	}
	b, ok := c.Model.Block(id)
	if !ok {
		return false
	}
	h, ok := c.registry.Lookup(b.Opcode)
	return ok && h.Compound
}

// menuValue renders a menu shadow, a shadow block with exactly one field and
// no inputs, as its quoted selection.
func menuValue(b *graph.Block) (string, bool) {
	if !b.Shadow || len(b.Fields) != 1 || len(b.Inputs) != 0 {
		return "", false
	}
	for _, f := range b.Fields {
		return Quote(f.Value), true
	}
	return "", false
}
