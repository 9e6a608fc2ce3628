package codegen

import "fmt"

// OverflowError is returned when a chain cannot be emitted safely: it loops
// back onto itself, nests too deeply or exceeds the step budget. It is fatal
// for one actor only.
type OverflowError struct {
	Actor   string
	BlockID string
	Reason  string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("structural overflow in actor '%s' at block '%s': %s", e.Actor, e.BlockID, e.Reason)
}

// DiagnosticKind classifies a recovered condition.
type DiagnosticKind int

const (
	// Unresolved is a reference to a block id that does not exist, or a
	// reporter that refers back to itself.
	Unresolved DiagnosticKind = iota
	// Unsupported is an opcode with no handler.
	Unsupported
)

func (k DiagnosticKind) String() string {
	switch k {
	case Unresolved:
		return "unresolved reference"
	case Unsupported:
		return "unsupported opcode"
	default:
		return "unknown"
	}
}

// Diagnostic records a condition that generation recovered from.
type Diagnostic struct {
	Kind    DiagnosticKind
	BlockID string
	Opcode  string
}

func (d Diagnostic) String() string {
	if d.Opcode == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.BlockID)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.BlockID, d.Opcode)
}
