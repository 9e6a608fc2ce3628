package graph

import "fmt"

// CycleError reports a loop in the next relation.
type CycleError struct {
	BlockID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected in next chain at block %q", e.BlockID)
}

// DetectCycles checks the next relation for loops. It returns a *CycleError
// naming the first block seen twice on a single chain.
func (m *Model) DetectCycles() error {
	// permanent: chains already walked to their end without a loop.
	// temporary: blocks on the chain currently being walked.
	permanent := make(map[string]bool, len(m.order))

	for _, start := range m.order {
		if permanent[start] {
			continue
		}
		temporary := make(map[string]bool)
		var path []string
		for id := start; id != "" && !permanent[id]; {
			if temporary[id] {
				return &CycleError{BlockID: id}
			}
			b, ok := m.blocks[id]
			if !ok {
				break
			}
			temporary[id] = true
			path = append(path, id)
			id = b.Next
		}
		for _, id := range path {
			permanent[id] = true
		}
	}
	return nil
}
