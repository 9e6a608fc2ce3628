package codegen

import (
	"testing"

	"github.com/Jvavscratch/utils/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModule struct{ opcode string }

func (m stubModule) Register(r *Registry) {
	r.Register(m.opcode, &Handler{Expression: func(*Context, *graph.Block) string { return m.opcode }})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()
	r := NewRegistry().RegisterModules(stubModule{"a"}, stubModule{"b"})

	assert.Equal(t, 2, r.Len())
	h, ok := r.Lookup("a")
	require.True(t, ok)
	assert.NotNil(t, h.Expression)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	t.Parallel()

	t.Run("duplicate opcode", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry().RegisterModules(stubModule{"a"})
		assert.PanicsWithValue(t, "handler for opcode 'a' already registered", func() {
			stubModule{"a"}.Register(r)
		})
	})

	t.Run("empty handler", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { NewRegistry().Register("x", &Handler{}) })
		assert.Panics(t, func() { NewRegistry().Register("x", nil) })
	})
}

func TestCategory(t *testing.T) {
	t.Parallel()
	testCases := map[string]string{
		"motion_movesteps":                   "motion",
		"pen_clear":                          "pen",
		"videoSensing_whenMotionGreaterThan": "video sensing",
		"text2speech_speakAndWait":           "text to speech",
		"microbit_whenButtonPressed":         "micro:bit",
		"ev3_motorTurnClockwise":             "LEGO EV3",
		"looks_changeeffectby":               "looks",
		"mystery":                            "unsupported",
		"":                                   "unsupported",
	}
	for opcode, want := range testCases {
		assert.Equal(t, want, Category(opcode), opcode)
	}
}
