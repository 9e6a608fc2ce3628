package looks_test

import (
	"testing"

	"github.com/Jvavscratch/utils/internal/testutil"
	"github.com/Jvavscratch/utils/modules/looks"
	"github.com/stretchr/testify/assert"
)

func TestSpeech(t *testing.T) {
	t.Parallel()
	lines := testutil.EmitEntries(t, `{
		"say": {"opcode": "looks_say", "inputs": {"MESSAGE": [1, [10, "Hello!"]]}, "next": "sayfor"},
		"sayfor": {"opcode": "looks_sayforsecs", "inputs": {"MESSAGE": [1, [10, "Hmm"]], "SECS": [1, [4, "2"]]}, "next": "think"},
		"think": {"opcode": "looks_think", "inputs": {"MESSAGE": [1, [10, "i"]]}, "next": "thinkfor"},
		"thinkfor": {"opcode": "looks_thinkforsecs", "inputs": {"MESSAGE": [1, [10, "line\nbreak"]], "SECS": [1, [4, "1.5"]]}, "next": "costume"},
		"costume": {"opcode": "looks_switchcostumeto"}
	}`, &looks.Module{})

	assert.Equal(t, []string{
		`say("Hello!");`,
		`say("Hmm", 2);`,
		"think(i);",
		`think("line\nbreak", 1.5);`,
		"// [looks] looks_switchcostumeto",
	}, lines)
}
