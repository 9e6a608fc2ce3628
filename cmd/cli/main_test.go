package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jvavscratch/utils/internal/app"
	"github.com/Jvavscratch/utils/internal/cli"
	"github.com/Jvavscratch/utils/internal/project"
	"github.com/Jvavscratch/utils/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_WritesProject(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := testutil.WriteProject(t, `{"targets": [
		{"name": "Stage", "isStage": true, "blocks": {
			"hat": {"opcode": "event_whenflagclicked", "next": "ask", "topLevel": true},
			"ask": {"opcode": "sensing_askandwait", "inputs": {"QUESTION": [1, [10, "Name?"]]}}
		}}
	]}`, nil)
	outDir := filepath.Join(t.TempDir(), "out")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"--out", outDir, "--log-level", "error", src})

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(outDir, "Stage.jv"))
	require.NoError(t, err)
	require.Contains(t, string(got), "when flagClicked {\n    ask(\"Name?\");\n}\n")
	require.Empty(t, out.String(), "error-level logging should stay quiet on success")
}

func TestRun_FatalInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := testutil.WriteProject(t, `{"targets": [`, nil)
	outDir := filepath.Join(t.TempDir(), "out")

	// --- Act ---
	err := run(&bytes.Buffer{}, []string{"-o", outDir, src})

	// --- Assert ---
	require.ErrorIs(t, err, project.ErrFatalInput)
	require.NoDirExists(t, outDir)
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := testutil.WriteProject(t, `{"targets": [
		{"name": "Stage", "isStage": true, "blocks": {}},
		{"name": "Broken", "blocks": ["not", "an", "object"]}
	]}`, nil)
	outDir := filepath.Join(t.TempDir(), "out")

	// --- Act ---
	err := run(&bytes.Buffer{}, []string{"--out", outDir, "--log-level", "error", src})

	// --- Assert ---
	require.ErrorIs(t, err, app.ErrPartialFailure)
	require.FileExists(t, filepath.Join(outDir, "Stage.jv"))
}

func TestRun_TomlProfile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := testutil.WriteProject(t, `{"targets": [{"name": "Stage", "isStage": true, "blocks": {}}]}`, nil)
	profiles := testutil.WriteFiles(t, map[string]string{
		"jvav.toml": "[fallback_variables]\nlives = 3\n",
	})
	outDir := filepath.Join(t.TempDir(), "out")

	// --- Act ---
	err := run(&bytes.Buffer{}, []string{"--profile-format", "toml", "--profile", profiles, "--out", outDir, src})

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(outDir, "Stage.jv"))
	require.NoError(t, err)
	require.Equal(t, "var lives = 3;\n", string(got))
}
