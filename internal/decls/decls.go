// Package decls computes the declaration preamble of an actor.
package decls

import (
	"strings"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/graph"
	"github.com/zclconf/go-cty/cty"
)

// Source tells where a declaration came from.
type Source int

const (
	// Explicit declarations come from the actor's own variable and list data.
	Explicit Source = iota
	// Inferred declarations are names written to by blocks but never declared.
	Inferred
	// Fallback declarations are injected from the profile.
	Fallback
)

// Declaration is one variable or list initializer.
type Declaration struct {
	Name string
	// Ident is the identifier the declaration is emitted under.
	Ident  string
	IsList bool
	// Value is the initial value of a variable.
	Value cty.Value
	// Values is the initial contents of a list.
	Values []cty.Value
	Source Source
	// Seeded is set when the list received the profile's seed values.
	Seeded bool
}

// Set is an ordered collection of declarations, at most one per name and
// kind. A variable and a list may share a name.
type Set struct {
	items []Declaration
	index map[key]int
	names *codegen.Names
}

type key struct {
	name   string
	isList bool
}

// Collect builds the declaration set for a model. Each name and kind keeps the
// first declaration found, looking at explicit declarations, then inferred names in
// block order, then the profile's fallback variables.
func Collect(m *graph.Model, p *config.Profile) *Set {
	s := &Set{index: make(map[key]int), names: codegen.NewNames()}

	for _, v := range m.Variables {
		s.add(Declaration{Name: v.Name, Value: v.Value, Source: Explicit})
	}
	for _, l := range m.Lists {
		s.add(Declaration{Name: l.Name, IsList: true, Values: l.Values, Source: Explicit})
	}

	for _, id := range m.IDs() {
		b, _ := m.Block(id)
		switch {
		case b.Opcode == "data_setvariableto" || b.Opcode == "data_changevariableby":
			if name := b.Field("VARIABLE"); name != "" {
				s.add(Declaration{Name: name, Value: cty.StringVal(""), Source: Inferred})
			}
		case isListOpcode(b.Opcode):
			if name := b.Field("LIST"); name != "" {
				s.add(Declaration{Name: name, IsList: true, Source: Inferred})
			}
		}
	}

	for _, v := range p.FallbackVariables {
		s.add(Declaration{Name: v.Name, Value: v.Value, Source: Fallback})
	}

	s.seed(p.SeedList)
	return s
}

func isListOpcode(opcode string) bool {
	return strings.HasPrefix(opcode, "data_") && strings.Contains(opcode, "list")
}

func (s *Set) add(d Declaration) {
	k := key{name: d.Name, isList: d.IsList}
	if _, exists := s.index[k]; exists {
		return
	}
	d.Ident = s.names.Declare(d.Name, d.IsList)
	s.index[k] = len(s.items)
	s.items = append(s.items, d)
}

// seed fills the reserved list with the profile's seed values when it has no
// contents of its own.
func (s *Set) seed(list config.SeedList) {
	i, ok := s.index[key{name: list.Name, isList: true}]
	if !ok || len(s.items[i].Values) > 0 {
		return
	}
	s.items[i].Values = append([]cty.Value(nil), list.Values...)
	s.items[i].Seeded = true
}

// Len returns the number of declarations.
func (s *Set) Len() int {
	return len(s.items)
}

// All returns the declarations in discovery order.
func (s *Set) All() []Declaration {
	return append([]Declaration(nil), s.items...)
}

// Names returns the identifier table the declarations were emitted with.
func (s *Set) Names() *codegen.Names {
	return s.names
}

// Variable returns the variable declaration for name.
func (s *Set) Variable(name string) (Declaration, bool) {
	return s.get(key{name: name})
}

// List returns the list declaration for name.
func (s *Set) List(name string) (Declaration, bool) {
	return s.get(key{name: name, isList: true})
}

func (s *Set) get(k key) (Declaration, bool) {
	i, ok := s.index[k]
	if !ok {
		return Declaration{}, false
	}
	return s.items[i], true
}

// Lines renders one initializer line per declaration.
func (s *Set) Lines() []string {
	lines := make([]string, 0, len(s.items))
	for _, d := range s.items {
		lines = append(lines, d.Line())
	}
	return lines
}

// Line renders the declaration as "var <name> = <literal>;".
func (d Declaration) Line() string {
	var literal string
	if d.IsList {
		literal = codegen.FormatList(d.Values)
	} else {
		literal = codegen.FormatValue(d.Value)
	}
	ident := d.Ident
	if ident == "" {
		ident = codegen.Identifier(d.Name)
	}
	return "var " + ident + " = " + literal + ";"
}
