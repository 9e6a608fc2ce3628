package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// CloudPrefix marks cloud variables, which are never declared locally.
const CloudPrefix = "☁ "

// ErrMalformed is returned when an actor's block container is unusable.
var ErrMalformed = errors.New("malformed actor data")

// RawActor is one actor as it appears in the project descriptor.
type RawActor struct {
	Name       string          `json:"name"`
	IsStage    bool            `json:"isStage"`
	Blocks     json.RawMessage `json:"blocks"`
	Variables  json.RawMessage `json:"variables"`
	Lists      json.RawMessage `json:"lists"`
	Broadcasts json.RawMessage `json:"broadcasts"`
}

// Variable is an explicitly declared variable.
type Variable struct {
	Name  string
	Value cty.Value
}

// List is an explicitly declared list.
type List struct {
	Name   string
	Values []cty.Value
}

// Model is the immutable view of one actor's graph.
type Model struct {
	Actor   string
	IsStage bool

	// Variables and Lists are in declaration order, cloud variables excluded.
	Variables []Variable
	Lists     []List
	// Broadcasts are accepted for completeness; generation does not use them.
	Broadcasts []string

	order  []string
	blocks map[string]*Block
}

// New builds the model for one actor.
func New(raw RawActor) (*Model, error) {
	m := &Model{
		Actor:   raw.Name,
		IsStage: raw.IsStage,
		blocks:  make(map[string]*Block),
	}

	if !isNull(raw.Blocks) {
		members, err := decodeObject(raw.Blocks)
		if err != nil {
			return nil, fmt.Errorf("%w: actor %q blocks: %v", ErrMalformed, raw.Name, err)
		}
		for _, mem := range members {
			if _, seen := m.blocks[mem.Key]; !seen {
				m.order = append(m.order, mem.Key)
			}
			m.blocks[mem.Key] = parseBlock(mem.Key, mem.Value)
		}
	}

	for _, pair := range declarationPairs(raw.Variables) {
		if strings.HasPrefix(pair.name, CloudPrefix) || m.hasVariable(pair.name) {
			continue
		}
		val, ok := valueOf(pair.value)
		if !ok {
			val = cty.StringVal("")
		}
		m.Variables = append(m.Variables, Variable{Name: pair.name, Value: val})
	}

	for _, pair := range declarationPairs(raw.Lists) {
		if m.hasList(pair.name) {
			continue
		}
		m.Lists = append(m.Lists, List{Name: pair.name, Values: listValues(pair.value)})
	}

	m.Broadcasts = broadcastNames(raw.Broadcasts)
	return m, nil
}

// Block returns the block with the given id.
func (m *Model) Block(id string) (*Block, bool) {
	b, ok := m.blocks[id]
	return b, ok
}

// IDs returns every block id in first-seen order.
func (m *Model) IDs() []string {
	return append([]string(nil), m.order...)
}

// Len returns the number of blocks.
func (m *Model) Len() int {
	return len(m.order)
}

func (m *Model) hasVariable(name string) bool {
	for _, v := range m.Variables {
		if v.Name == name {
			return true
		}
	}
	return false
}

func (m *Model) hasList(name string) bool {
	for _, l := range m.Lists {
		if l.Name == name {
			return true
		}
	}
	return false
}
