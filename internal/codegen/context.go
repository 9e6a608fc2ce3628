package codegen

import (
	"fmt"
	"strings"

	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/graph"
)

// Context carries the state of generating one actor: the output buffer,
// the traversal guards and the diagnostics collected so far. It is not safe
// for concurrent use; each actor gets its own.
type Context struct {
	Actor   string
	Model   *graph.Model
	Profile *config.Profile
	// Names resolves variable and list references. NewContext installs an
	// empty table; callers replace it with the one their declarations built.
	Names *Names

	registry *Registry
	lines    []string
	indent   string

	// active holds the statement ids on the current emission path and
	// evaluating holds the reporter ids currently being rendered.
	active     map[string]bool
	evaluating map[string]bool
	steps      int
	loops      int

	diagnostics []Diagnostic
}

// NewContext prepares generation for one model.
func NewContext(m *graph.Model, reg *Registry, p *config.Profile) *Context {
	return &Context{
		Actor:      m.Actor,
		Model:      m,
		Profile:    p,
		Names:      NewNames(),
		registry:   reg,
		indent:     strings.Repeat(" ", p.IndentWidth),
		active:     make(map[string]bool),
		evaluating: make(map[string]bool),
	}
}

// WriteLine appends one line at the given nesting depth.
func (c *Context) WriteLine(depth int, line string) {
	c.lines = append(c.lines, strings.Repeat(c.indent, depth)+line)
}

// WriteLinef is WriteLine with formatting.
func (c *Context) WriteLinef(depth int, format string, args ...any) {
	c.WriteLine(depth, fmt.Sprintf(format, args...))
}

// BlankLine appends an empty line.
func (c *Context) BlankLine() {
	c.lines = append(c.lines, "")
}

// Lines returns the lines written so far.
func (c *Context) Lines() []string {
	return append([]string(nil), c.lines...)
}

// String returns the output with every line terminated by a newline.
func (c *Context) String() string {
	if len(c.lines) == 0 {
		return ""
	}
	return strings.Join(c.lines, "\n") + "\n"
}

// Diagnostics returns the recovered conditions in the order they occurred.
func (c *Context) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Steps returns the number of statement blocks emitted so far.
func (c *Context) Steps() int {
	return c.steps
}

// PushLoop allocates the counter name for a new loop nesting level.
// Names come from the profile's loop variables; once they run out the first
// name is reused with the nesting level as suffix.
func (c *Context) PushLoop() string {
	level := c.loops
	c.loops++
	names := c.Profile.LoopVariables
	if level < len(names) {
		return Identifier(names[level])
	}
	return fmt.Sprintf("%s%d", Identifier(names[0]), level)
}

// PopLoop releases the innermost loop counter.
func (c *Context) PopLoop() {
	if c.loops > 0 {
		c.loops--
	}
}

func (c *Context) record(kind DiagnosticKind, id, opcode string) {
	c.diagnostics = append(c.diagnostics, Diagnostic{Kind: kind, BlockID: id, Opcode: opcode})
}

func (c *Context) overflow(id, format string, args ...any) error {
	return &OverflowError{Actor: c.Actor, BlockID: id, Reason: fmt.Sprintf(format, args...)}
}
