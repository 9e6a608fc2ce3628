package data_test

import (
	"testing"

	"github.com/Jvavscratch/utils/internal/testutil"
	"github.com/Jvavscratch/utils/modules/data"
	"github.com/Jvavscratch/utils/modules/operators"
	"github.com/stretchr/testify/assert"
)

func TestVariableStatements(t *testing.T) {
	t.Parallel()
	lines := testutil.EmitEntries(t, `{
		"set": {"opcode": "data_setvariableto", "fields": {"VARIABLE": ["score", "v1"]}, "inputs": {"VALUE": [1, [10, "5"]]}, "next": "change"},
		"change": {"opcode": "data_changevariableby", "fields": {"VARIABLE": ["score", "v1"]}, "inputs": {"VALUE": [3, "add", [4, "1"]]}, "next": "name"},
		"add": {"opcode": "operator_add", "inputs": {"NUM1": [1, [4, "1"]], "NUM2": [3, [12, "my bonus", "v2"], [4, ""]]}},
		"name": {"opcode": "data_setvariableto", "fields": {"VARIABLE": ["player name", "v3"]}, "inputs": {"VALUE": [1, [10, "Ada"]]}, "next": "show"},
		"show": {"opcode": "data_showvariable", "fields": {"VARIABLE": ["score", "v1"]}}
	}`, &data.Module{}, &operators.Module{})

	assert.Equal(t, []string{
		"score = 5;",
		"score += 1 + my_bonus;",
		`player_name = "Ada";`,
		"showVariable(score);",
	}, lines)
}

func TestListStatements(t *testing.T) {
	t.Parallel()
	lines := testutil.EmitEntries(t, `{
		"add": {"opcode": "data_addtolist", "fields": {"LIST": ["items", "l1"]}, "inputs": {"ITEM": [1, [10, "apple"]]}, "next": "delete"},
		"delete": {"opcode": "data_deleteoflist", "fields": {"LIST": ["items", "l1"]}, "inputs": {"INDEX": [1, [7, "1"]]}, "next": "insert"},
		"insert": {"opcode": "data_insertatlist", "fields": {"LIST": ["items", "l1"]}, "inputs": {"INDEX": [1, [7, "2"]], "ITEM": [1, [10, "pear"]]}, "next": "replace"},
		"replace": {"opcode": "data_replaceitemoflist", "fields": {"LIST": ["items", "l1"]}, "inputs": {"INDEX": [1, [7, "1"]], "ITEM": [1, [10, "fig"]]}, "next": "clear"},
		"clear": {"opcode": "data_deletealloflist", "fields": {"LIST": ["items", "l1"]}}
	}`, &data.Module{})

	assert.Equal(t, []string{
		`items.add("apple");`,
		"items.delete(1);",
		`items.insert(2, "pear");`,
		`items.replace(1, "fig");`,
		"items.clear();",
	}, lines)
}

func TestReporters(t *testing.T) {
	t.Parallel()
	blocks := `{
		"var": {"opcode": "data_variable", "fields": {"VARIABLE": ["score", "v1"]}},
		"contents": {"opcode": "data_listcontents", "fields": {"LIST": ["high scores", "l1"]}},
		"item": {"opcode": "data_itemoflist", "fields": {"LIST": ["items", "l1"]}, "inputs": {"INDEX": [1, [7, "3"]]}},
		"length": {"opcode": "data_lengthoflist", "fields": {"LIST": ["items", "l1"]}},
		"index": {"opcode": "data_itemnumoflist", "fields": {"LIST": ["items", "l1"]}, "inputs": {"ITEM": [1, [10, "fig"]]}},
		"contains": {"opcode": "data_listcontainsitem", "fields": {"LIST": ["items", "l1"]}, "inputs": {"ITEM": [1, [10, "fig"]]}},
		"loose": [12, "lives", "v9", 100, 200]
	}`
	testCases := map[string]string{
		"var":      "score",
		"contents": "high_scores",
		"item":     "itemOf(items, 3)",
		"length":   "lengthOf(items)",
		"index":    `indexOf(items, "fig")`,
		"contains": `contains(items, "fig")`,
		"loose":    "lives",
	}
	for id, want := range testCases {
		assert.Equal(t, want, testutil.Expression(t, blocks, id, &data.Module{}), id)
	}
}

func TestExpressionStatement(t *testing.T) {
	t.Parallel()
	lines := testutil.EmitEntries(t, `{"loose": [12, "lives", "v9", 100, 200]}`, &data.Module{})
	assert.Equal(t, []string{"lives;"}, lines)
}
