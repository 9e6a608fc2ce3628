package graph

import "github.com/zclconf/go-cty/cty"

// Block is a single node of the graph.
type Block struct {
	ID       string
	Opcode   string
	Fields   map[string]Field
	Inputs   map[string]Input
	Mutation Mutation
	// Next is the id of the following statement block, or empty.
	Next string
	// Shadow marks editor-provided placeholder blocks such as menus.
	Shadow bool
}

// Field is a literal field value, typically a menu selection. ID is set for
// fields that name a variable, list or broadcast.
type Field struct {
	Value string
	ID    string
}

// LiteralKind classifies an inline input value.
type LiteralKind int

const (
	// LiteralText covers numbers, strings, colors and broadcast names.
	LiteralText LiteralKind = iota
	// LiteralVariable is an inline variable reporter; Value holds its name.
	LiteralVariable
	// LiteralList is an inline list reporter; Value holds its name.
	LiteralList
)

// Literal is an inline input value.
type Literal struct {
	Kind  LiteralKind
	Value cty.Value
}

// Input is one named input of a block. At most one of Block and Literal
// drives generation: a block reference wins over a literal.
type Input struct {
	// Block is the id of the block plugged into the input.
	Block string
	// Shadow is the id of an obscured shadow block, if any.
	Shadow string
	// Literal is the inline value, if any.
	Literal *Literal
}

// IsEmpty reports whether the input carries neither a reference nor a value.
func (in Input) IsEmpty() bool {
	return in.Block == "" && in.Literal == nil
}

// Mutation holds opcode-specific metadata. Only the procedure-related parts
// are interpreted.
type Mutation struct {
	ProcCode      string
	ArgumentIDs   []string
	ArgumentNames []string
	Warp          bool
}

// Field returns the value of the named field, or "" when absent.
func (b *Block) Field(name string) string {
	return b.Fields[name].Value
}

// Input returns the named input; the zero Input when absent.
func (b *Block) Input(name string) Input {
	return b.Inputs[name]
}

// Substack returns the id of the block chain plugged into a body input.
func (b *Block) Substack(name string) string {
	return b.Inputs[name].Block
}
