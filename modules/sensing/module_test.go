package sensing_test

import (
	"testing"

	"github.com/Jvavscratch/utils/internal/testutil"
	"github.com/Jvavscratch/utils/modules/looks"
	"github.com/Jvavscratch/utils/modules/sensing"
	"github.com/stretchr/testify/assert"
)

func TestSensing(t *testing.T) {
	t.Parallel()
	lines := testutil.EmitEntries(t, `{
		"ask": {"opcode": "sensing_askandwait", "inputs": {"QUESTION": [1, [10, "Name?"]]}, "next": "say"},
		"say": {"opcode": "looks_say", "inputs": {"MESSAGE": [3, "answer", [10, ""]]}, "next": "reset"},
		"answer": {"opcode": "sensing_answer"},
		"reset": {"opcode": "sensing_resettimer", "next": "think"},
		"think": {"opcode": "looks_think", "inputs": {"MESSAGE": [3, "key", [10, ""]]}},
		"key": {"opcode": "sensing_keypressed", "inputs": {"KEY_OPTION": [1, "keymenu"]}},
		"keymenu": {"opcode": "sensing_keyoptions", "fields": {"KEY_OPTION": ["space", null]}, "shadow": true}
	}`, &sensing.Module{}, &looks.Module{})

	assert.Equal(t, []string{
		`ask("Name?");`,
		"say(answer());",
		"resetTimer();",
		`think(keyPressed("space"));`,
	}, lines)
}
