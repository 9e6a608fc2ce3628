package codegen

import (
	"fmt"
	"log/slog"

	"github.com/Jvavscratch/utils/internal/graph"
)

// Module is the interface every opcode family implements to be registered.
type Module interface {
	Register(r *Registry)
}

// ExpressionFunc renders a value-producing block. It never fails.
type ExpressionFunc func(c *Context, b *graph.Block) string

// StatementFunc writes the lines for one statement block at the given depth.
// Only traversal guards produce errors.
type StatementFunc func(c *Context, b *graph.Block, depth int) error

// Handler describes how one opcode is generated.
type Handler struct {
	// Category is the palette name used in diagnostics.
	Category string
	// Expression renders the block in value position.
	Expression ExpressionFunc
	// Statement emits the block in statement position. A block with only an
	// Expression is emitted as an expression statement.
	Statement StatementFunc
	// ClaimsNext marks handlers that emit the block's next chain themselves,
	// as hats and procedure definitions do.
	ClaimsNext bool
	// Compound marks expressions that need parentheses when used as an
	// operand of another operator.
	Compound bool
}

// Registry holds the handlers for a single generation run.
type Registry struct {
	handlers map[string]*Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]*Handler)}
}

// Register adds the handler for an opcode. Registering the same opcode twice
// is a programming error and panics.
func (r *Registry) Register(opcode string, h *Handler) {
	if _, exists := r.handlers[opcode]; exists {
		panic(fmt.Sprintf("handler for opcode '%s' already registered", opcode))
	}
	if h == nil || (h.Expression == nil && h.Statement == nil) {
		panic(fmt.Sprintf("handler for opcode '%s' has neither expression nor statement", opcode))
	}
	slog.Debug("Registering opcode handler.", "opcode", opcode, "category", h.Category)
	r.handlers[opcode] = h
}

// Lookup returns the handler registered for opcode.
func (r *Registry) Lookup(opcode string) (*Handler, bool) {
	h, ok := r.handlers[opcode]
	return h, ok
}

// Len returns the number of registered opcodes.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// RegisterModules registers every module in order.
func (r *Registry) RegisterModules(modules ...Module) *Registry {
	for _, m := range modules {
		m.Register(r)
	}
	return r
}
