package graph

import "strings"

// IsEntryOpcode reports whether blocks with this opcode always start a
// script, regardless of whether something references them.
func IsEntryOpcode(opcode string) bool {
	return strings.HasPrefix(opcode, "event_when") || opcode == "control_start_as_clone"
}

// EntryPoints returns the ids of every block that is not owned by another
// block, in first-seen order. Hat blocks are always included.
func (m *Model) EntryPoints() []string {
	children := make(map[string]bool, len(m.order))
	for _, id := range m.order {
		b := m.blocks[id]
		if b.Next != "" {
			children[b.Next] = true
		}
		for _, in := range b.Inputs {
			if in.Block != "" {
				children[in.Block] = true
			}
			if in.Shadow != "" {
				children[in.Shadow] = true
			}
		}
	}

	var entries []string
	for _, id := range m.order {
		if !children[id] || IsEntryOpcode(m.blocks[id].Opcode) {
			entries = append(entries, id)
		}
	}
	return entries
}
