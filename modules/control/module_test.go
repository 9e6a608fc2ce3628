package control_test

import (
	"testing"

	"github.com/Jvavscratch/utils/internal/testutil"
	"github.com/Jvavscratch/utils/modules/control"
	"github.com/Jvavscratch/utils/modules/events"
	"github.com/Jvavscratch/utils/modules/looks"
	"github.com/Jvavscratch/utils/modules/operators"
	"github.com/stretchr/testify/assert"
)

func emit(t *testing.T, blocks string) []string {
	t.Helper()
	return testutil.EmitEntries(t, blocks, &control.Module{}, &events.Module{}, &looks.Module{}, &operators.Module{})
}

func TestRepeat(t *testing.T) {
	t.Parallel()
	lines := emit(t, `{
		"loop": {"opcode": "control_repeat", "inputs": {"TIMES": [1, [6, "10"]], "SUBSTACK": [2, "say"]}},
		"say": {"opcode": "looks_say", "inputs": {"MESSAGE": [1, [10, "Hello!"]]}}
	}`)
	assert.Equal(t, []string{
		"for (var i = 0; i < 10; i++) {",
		`    say("Hello!");`,
		"}",
	}, lines)
}

func TestRepeat_NestedCounters(t *testing.T) {
	t.Parallel()
	lines := emit(t, `{
		"outer": {"opcode": "control_repeat", "inputs": {"TIMES": [1, [6, "3"]], "SUBSTACK": [2, "inner"]}},
		"inner": {"opcode": "control_repeat", "inputs": {"TIMES": [1, [6, "2"]]}}
	}`)
	assert.Equal(t, []string{
		"for (var i = 0; i < 3; i++) {",
		"    for (var j = 0; j < 2; j++) {",
		"    }",
		"}",
	}, lines)
}

func TestLoops(t *testing.T) {
	t.Parallel()
	lines := emit(t, `{
		"forever": {"opcode": "control_forever", "inputs": {"SUBSTACK": [2, "while"]}},
		"while": {"opcode": "control_while", "inputs": {"CONDITION": [2, "lt"]}, "next": "until"},
		"lt": {"opcode": "operator_lt", "inputs": {"OPERAND1": [1, [10, "1"]], "OPERAND2": [1, [10, "2"]]}},
		"until": {"opcode": "control_repeat_until", "inputs": {"CONDITION": [2, "lt2"]}, "next": "untilnot"},
		"lt2": {"opcode": "operator_lt", "inputs": {"OPERAND1": [1, [10, "3"]], "OPERAND2": [1, [10, "4"]]}},
		"untilnot": {"opcode": "control_repeat_until", "inputs": {"CONDITION": [2, "not"]}},
		"not": {"opcode": "operator_not", "inputs": {"OPERAND": [2, "lt3"]}},
		"lt3": {"opcode": "operator_lt", "inputs": {"OPERAND1": [1, [10, "5"]], "OPERAND2": [1, [10, "6"]]}}
	}`)
	assert.Equal(t, []string{
		"while (true) {",
		"    while (1 < 2) {",
		"    }",
		"    while (!(3 < 4)) {",
		"    }",
		"    while (5 < 6) {",
		"    }",
		"}",
	}, lines)
}

func TestIf(t *testing.T) {
	t.Parallel()

	t.Run("with alternate body", func(t *testing.T) {
		t.Parallel()
		lines := emit(t, `{
			"if": {"opcode": "control_if_else", "inputs": {"CONDITION": [2, "eq"], "SUBSTACK": [2, "a"], "SUBSTACK2": [2, "b"]}},
			"eq": {"opcode": "operator_equals", "inputs": {"OPERAND1": [1, [10, "x"]], "OPERAND2": [1, [10, "y"]]}},
			"a": {"opcode": "looks_say", "inputs": {"MESSAGE": [1, [10, "yes"]]}},
			"b": {"opcode": "looks_say", "inputs": {"MESSAGE": [1, [10, "no"]]}}
		}`)
		assert.Equal(t, []string{
			`if ("x" == "y") {`,
			`    say("yes");`,
			"} else {",
			`    say("no");`,
			"}",
		}, lines)
	})

	t.Run("if_else without alternate body", func(t *testing.T) {
		t.Parallel()
		lines := emit(t, `{
			"if": {"opcode": "control_if_else", "inputs": {"SUBSTACK": [2, "a"]}},
			"a": {"opcode": "looks_say"}
		}`)
		assert.Equal(t, []string{"if (null) {", "    say(null);", "}"}, lines)
	})

	t.Run("missing substack", func(t *testing.T) {
		t.Parallel()
		lines := emit(t, `{
			"if": {"opcode": "control_if", "inputs": {"CONDITION": [1, [10, "true"]], "SUBSTACK": [2, "ghost"]}}
		}`)
		assert.Equal(t, []string{`if ("true") {`, "}"}, lines)
	})
}

func TestSimpleStatements(t *testing.T) {
	t.Parallel()
	lines := emit(t, `{
		"clone": {"opcode": "control_start_as_clone", "next": "wait"},
		"wait": {"opcode": "control_wait", "inputs": {"DURATION": [1, [5, "0.5"]]}, "next": "create"},
		"create": {"opcode": "control_create_clone_of", "inputs": {"CLONE_OPTION": [1, "menu"]}, "next": "waituntil"},
		"menu": {"opcode": "control_create_clone_of_menu", "fields": {"CLONE_OPTION": ["_myself_", null]}, "shadow": true},
		"waituntil": {"opcode": "control_wait_until", "inputs": {"CONDITION": [2, "gt"]}, "next": "delete"},
		"gt": {"opcode": "operator_gt", "inputs": {"OPERAND1": [1, [10, "1"]], "OPERAND2": [1, [10, "0"]]}},
		"delete": {"opcode": "control_delete_this_clone", "next": "stop"},
		"stop": {"opcode": "control_stop", "fields": {"STOP_OPTION": ["all", null]}}
	}`)
	assert.Equal(t, []string{
		"when startAsClone {",
		"    wait(0.5);",
		`    createClone("_myself_");`,
		"    waitUntil(1 > 0);",
		"    deleteThisClone();",
		`    stop("all");`,
		"}",
	}, lines)
}
