package codegen

import "fmt"

// EmitChain emits the block with the given id and every block after it on
// its next chain. Nested bodies are emitted by the handlers at depth+1. A
// chain that revisits a block on the current path, nests deeper than the
// profile allows or exceeds the step budget fails with *OverflowError.
func (c *Context) EmitChain(id string, depth int) error {
	if depth > c.Profile.MaxDepth {
		return c.overflow(id, "nesting depth exceeds %d", c.Profile.MaxDepth)
	}

	var path []string
	defer func() {
		for _, visited := range path {
			delete(c.active, visited)
		}
	}()

	for id != "" {
		b, ok := c.Model.Block(id)
		if !ok {
			c.record(Unresolved, id, "")
			return nil
		}
		if c.active[id] {
			return c.overflow(id, "chain loops back to block '%s'", id)
		}
		c.steps++
		if c.steps > c.Profile.MaxSteps {
			return c.overflow(id, "more than %d blocks emitted", c.Profile.MaxSteps)
		}
		c.active[id] = true
		path = append(path, id)

		h, ok := c.registry.Lookup(b.Opcode)
		switch {
		case ok && h.Statement != nil:
			if err := h.Statement(c, b, depth); err != nil {
				return err
			}
			if h.ClaimsNext {
				return nil
			}
		case ok && h.Expression != nil:
			c.WriteLine(depth, c.Expression(id)+";")
		default:
			c.record(Unsupported, id, b.Opcode)
			c.WriteLine(depth, unsupportedMarker(b.Opcode))
		}
		id = b.Next
	}
	return nil
}

// EmitBody emits a nested chain one level below depth. An empty id yields an
// empty body.
func (c *Context) EmitBody(id string, depth int) error {
	if id == "" {
		return nil
	}
	return c.EmitChain(id, depth+1)
}

// Block emits a braced construct: the header line, the body chain and the
// closing brace.
func (c *Context) Block(depth int, header, body string) error {
	c.WriteLine(depth, header+" {")
	if err := c.EmitBody(body, depth); err != nil {
		return err
	}
	c.WriteLine(depth, "}")
	return nil
}

func unsupportedMarker(opcode string) string {
	if opcode == "" {
		opcode = "<none>"
	}
	return fmt.Sprintf("// [%s] %s", Category(opcode), opcode)
}
