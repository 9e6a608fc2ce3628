package codegen

import "strconv"

// Names assigns every declared variable and list a distinct identifier.
// Variables and lists live in separate namespaces in a project but share one
// in the generated text, and different names may sanitize to the same
// identifier; the later declaration then gets a numeric suffix.
type Names struct {
	variables map[string]string
	lists     map[string]string
	used      map[string]bool
}

// NewNames returns an empty name table.
func NewNames() *Names {
	return &Names{
		variables: make(map[string]string),
		lists:     make(map[string]string),
		used:      make(map[string]bool),
	}
}

// Declare registers a variable or list and returns its identifier. Declaring
// the same name and kind twice returns the first identifier.
func (n *Names) Declare(name string, isList bool) string {
	table := n.table(isList)
	if ident, ok := table[name]; ok {
		return ident
	}
	base := Identifier(name)
	ident := base
	for i := 2; n.used[ident]; i++ {
		ident = base + "_" + strconv.Itoa(i)
	}
	n.used[ident] = true
	table[name] = ident
	return ident
}

// Variable returns the identifier of a variable. Undeclared names are
// sanitized without reservation.
func (n *Names) Variable(name string) string {
	if ident, ok := n.variables[name]; ok {
		return ident
	}
	return Identifier(name)
}

// List returns the identifier of a list.
func (n *Names) List(name string) string {
	if ident, ok := n.lists[name]; ok {
		return ident
	}
	return Identifier(name)
}

func (n *Names) table(isList bool) map[string]string {
	if isList {
		return n.lists
	}
	return n.variables
}
