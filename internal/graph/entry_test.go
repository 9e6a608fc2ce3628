package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEntryOpcode(t *testing.T) {
	t.Parallel()
	testCases := map[string]bool{
		"event_whenflagclicked":       true,
		"event_whenbroadcastreceived": true,
		"control_start_as_clone":      true,
		"event_broadcast":             false,
		"looks_say":                   false,
		"":                            false,
	}
	for opcode, want := range testCases {
		assert.Equal(t, want, IsEntryOpcode(opcode), opcode)
	}
}

func TestEntryPoints(t *testing.T) {
	t.Parallel()
	m, err := New(rawActor(t, `{
		"blocks": {
			"loose": {"opcode": "looks_say", "inputs": {"MESSAGE": [3, "join", [10, "hi"]]}},
			"join": {"opcode": "operator_join"},
			"hat": {"opcode": "event_whenflagclicked", "next": "body"},
			"body": {"opcode": "control_repeat", "inputs": {"SUBSTACK": [2, "inner"], "TIMES": [3, "r", "shadow"]}},
			"inner": {"opcode": "looks_say"},
			"r": {"opcode": "operator_random"},
			"shadow": {"opcode": "math_whole_number"},
			"owned": {"opcode": "looks_think", "next": "hat"}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"loose", "hat", "owned"}, m.EntryPoints())
	assert.Equal(t, m.EntryPoints(), m.EntryPoints())
}

func TestEntryPoints_Empty(t *testing.T) {
	t.Parallel()
	m, err := New(RawActor{})
	require.NoError(t, err)
	assert.Empty(t, m.EntryPoints())
}
