package graph

import (
	"encoding/json"
	"strconv"

	"github.com/zclconf/go-cty/cty"
)

// Primitive type codes of the project format.
const (
	primitiveBroadcast = 11
	primitiveVariable  = 12
	primitiveList      = 13
)

// parseBlock normalizes one entry of the block map. It never fails: every
// unusable part degrades to its zero value.
func parseBlock(id string, raw json.RawMessage) *Block {
	b := &Block{
		ID:     id,
		Fields: make(map[string]Field),
		Inputs: make(map[string]Input),
	}

	switch firstByte(raw) {
	case '[':
		parseLooseReporter(b, raw)
		return b
	case '{':
	default:
		return b
	}

	var parts map[string]json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return b
	}

	b.Opcode = textOf(parts["opcode"])
	b.Next = textOf(parts["next"])
	b.Shadow, _ = strconv.ParseBool(textOf(parts["shadow"]))

	if members, err := decodeObject(parts["fields"]); err == nil {
		for _, mem := range members {
			b.Fields[mem.Key] = parseField(mem.Value)
		}
	}
	if members, err := decodeObject(parts["inputs"]); err == nil {
		for _, mem := range members {
			b.Inputs[mem.Key] = parseInput(mem.Value)
		}
	}
	b.Mutation = parseMutation(parts["mutation"])
	return b
}

// parseLooseReporter handles top-level reporters stored as primitive arrays,
// e.g. [12, "score", "id", x, y].
func parseLooseReporter(b *Block, raw json.RawMessage) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) < 2 {
		return
	}
	field := Field{Value: textOf(items[1])}
	if len(items) > 2 {
		field.ID = textOf(items[2])
	}
	switch code, _ := strconv.Atoi(textOf(items[0])); code {
	case primitiveVariable:
		b.Opcode = "data_variable"
		b.Fields["VARIABLE"] = field
	case primitiveList:
		b.Opcode = "data_listcontents"
		b.Fields["LIST"] = field
	}
}

// parseField accepts [value, id] as well as a bare scalar.
func parseField(raw json.RawMessage) Field {
	if firstByte(raw) != '[' {
		return Field{Value: textOf(raw)}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return Field{}
	}
	f := Field{Value: textOf(items[0])}
	if len(items) > 1 {
		f.ID = textOf(items[1])
	}
	return f
}

// parseInput accepts [shadowType, ref|primitive, obscured?], a bare block id
// string, or a bare scalar literal.
func parseInput(raw json.RawMessage) Input {
	switch firstByte(raw) {
	case '[':
	case '"':
		return Input{Block: textOf(raw)}
	case 0:
		return Input{}
	default:
		if isNull(raw) {
			return Input{}
		}
		return Input{Literal: &Literal{Kind: LiteralText, Value: scalarOf(raw)}}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) < 2 {
		return Input{}
	}

	var in Input
	switch firstByte(items[1]) {
	case '"':
		in.Block = textOf(items[1])
	case '[':
		in.Literal = parsePrimitive(items[1])
	}
	if len(items) > 2 {
		switch firstByte(items[2]) {
		case '"':
			in.Shadow = textOf(items[2])
		case '[':
			if in.Literal == nil {
				in.Literal = parsePrimitive(items[2])
			}
		}
	}
	return in
}

// parsePrimitive decodes [typeCode, value, id?, ...].
func parsePrimitive(raw json.RawMessage) *Literal {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) < 2 {
		return nil
	}
	code, _ := strconv.Atoi(textOf(items[0]))
	switch code {
	case primitiveVariable:
		return &Literal{Kind: LiteralVariable, Value: cty.StringVal(textOf(items[1]))}
	case primitiveList:
		return &Literal{Kind: LiteralList, Value: cty.StringVal(textOf(items[1]))}
	case primitiveBroadcast:
		return &Literal{Kind: LiteralText, Value: cty.StringVal(textOf(items[1]))}
	default:
		return &Literal{Kind: LiteralText, Value: scalarOf(items[1])}
	}
}

// parseMutation extracts the procedure metadata.
func parseMutation(raw json.RawMessage) Mutation {
	var parts map[string]json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return Mutation{}
	}
	warp, _ := strconv.ParseBool(textOf(parts["warp"]))
	return Mutation{
		ProcCode:      textOf(parts["proccode"]),
		ArgumentIDs:   stringList(parts["argumentids"]),
		ArgumentNames: stringList(parts["argumentnames"]),
		Warp:          warp,
	}
}

// pair is one normalized declaration entry.
type pair struct {
	name  string
	value json.RawMessage
}

// declarationPairs normalizes both accepted declaration shapes into ordered
// [name, value] pairs. Malformed entries are skipped.
func declarationPairs(raw json.RawMessage) []pair {
	var entries []json.RawMessage
	switch firstByte(raw) {
	case '[':
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil
		}
	case '{':
		members, err := decodeObject(raw)
		if err != nil {
			return nil
		}
		for _, mem := range members {
			entries = append(entries, mem.Value)
		}
	default:
		return nil
	}

	pairs := make([]pair, 0, len(entries))
	for _, entry := range entries {
		var items []json.RawMessage
		if err := json.Unmarshal(entry, &items); err != nil || len(items) == 0 {
			continue
		}
		name := textOf(items[0])
		if name == "" {
			continue
		}
		p := pair{name: name}
		if len(items) > 1 {
			p.value = items[1]
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// listValues decodes a declared list's initial contents.
func listValues(raw json.RawMessage) []cty.Value {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	values := make([]cty.Value, 0, len(items))
	for _, item := range items {
		val, ok := valueOf(item)
		if !ok {
			val = cty.StringVal("")
		}
		values = append(values, val)
	}
	return values
}

// broadcastNames accepts an id-keyed object of names or a plain list of names.
func broadcastNames(raw json.RawMessage) []string {
	var names []string
	switch firstByte(raw) {
	case '{':
		members, err := decodeObject(raw)
		if err != nil {
			return nil
		}
		for _, mem := range members {
			names = append(names, textOf(mem.Value))
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for _, item := range items {
			names = append(names, textOf(item))
		}
	}
	return names
}
