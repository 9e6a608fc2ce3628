package codegen

import (
	"strings"
	"unicode"
)

// Identifier turns an arbitrary display name into a valid identifier: every
// rune that is not a letter, digit or underscore becomes an underscore and a
// leading digit gets an underscore prefix.
func Identifier(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ProcedureName derives a function name from a procedure's proccode by
// dropping its argument placeholders.
func ProcedureName(proccode string) string {
	fields := strings.Fields(proccode)
	kept := fields[:0]
	for _, f := range fields {
		if f == "%s" || f == "%b" || f == "%n" {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return "procedure"
	}
	return Identifier(strings.Join(kept, " "))
}
