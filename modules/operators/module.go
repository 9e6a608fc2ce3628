package operators

import (
	"strings"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/graph"
)

const category = "operators"

// Module implements the codegen.Module interface for this package.
type Module struct{}

// Binary lists the infix operators with the names of their two inputs.
var Binary = []struct {
	Opcode      string
	Token       string
	Left, Right string
}{
	{"operator_equals", "==", "OPERAND1", "OPERAND2"},
	{"operator_gt", ">", "OPERAND1", "OPERAND2"},
	{"operator_lt", "<", "OPERAND1", "OPERAND2"},
	{"operator_add", "+", "NUM1", "NUM2"},
	{"operator_subtract", "-", "NUM1", "NUM2"},
	{"operator_multiply", "*", "NUM1", "NUM2"},
	{"operator_divide", "/", "NUM1", "NUM2"},
	{"operator_mod", "%", "NUM1", "NUM2"},
	{"operator_and", "&&", "OPERAND1", "OPERAND2"},
	{"operator_or", "||", "OPERAND1", "OPERAND2"},
}

// mathFunctions maps the mathop menu to function names.
var mathFunctions = map[string]string{
	"abs":     "abs",
	"floor":   "floor",
	"ceiling": "ceil",
	"sqrt":    "sqrt",
	"sin":     "sin",
	"cos":     "cos",
	"tan":     "tan",
	"asin":    "asin",
	"acos":    "acos",
	"atan":    "atan",
	"ln":      "ln",
	"log":     "log",
	"e ^":     "exp",
	"10 ^":    "pow10",
}

func infix(token, left, right string) codegen.ExpressionFunc {
	return func(c *codegen.Context, b *graph.Block) string {
		return c.Operand(b, left) + " " + token + " " + c.Operand(b, right)
	}
}

func function(name string, inputs ...string) codegen.ExpressionFunc {
	return func(c *codegen.Context, b *graph.Block) string {
		args := make([]string, len(inputs))
		for i, in := range inputs {
			args[i] = c.Input(b, in)
		}
		return name + "(" + strings.Join(args, ", ") + ")"
	}
}

func not(c *codegen.Context, b *graph.Block) string {
	return "!(" + c.Input(b, "OPERAND") + ")"
}

func mathop(c *codegen.Context, b *graph.Block) string {
	op := b.Field("OPERATOR")
	name, ok := mathFunctions[op]
	if !ok {
		name = codegen.Identifier(op)
	}
	return name + "(" + c.Input(b, "NUM") + ")"
}

// Register registers the operator handlers.
func (m *Module) Register(r *codegen.Registry) {
	for _, op := range Binary {
		r.Register(op.Opcode, &codegen.Handler{
			Category:   category,
			Compound:   true,
			Expression: infix(op.Token, op.Left, op.Right),
		})
	}
	r.Register("operator_not", &codegen.Handler{Category: category, Expression: not})
	r.Register("operator_join", &codegen.Handler{Category: category, Expression: function("join", "STRING1", "STRING2")})
	r.Register("operator_random", &codegen.Handler{Category: category, Expression: function("random", "FROM", "TO")})
	r.Register("operator_length", &codegen.Handler{Category: category, Expression: function("length", "STRING")})
	r.Register("operator_letter_of", &codegen.Handler{Category: category, Expression: function("letterOf", "LETTER", "STRING")})
	r.Register("operator_contains", &codegen.Handler{Category: category, Expression: function("containsText", "STRING1", "STRING2")})
	r.Register("operator_round", &codegen.Handler{Category: category, Expression: function("round", "NUM")})
	r.Register("operator_mathop", &codegen.Handler{Category: category, Expression: mathop})
}
