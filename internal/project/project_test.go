package project

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jvavscratch/utils/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

const descriptorJSON = `{
	"targets": [
		{"isStage": true, "name": "Stage", "blocks": {}, "variables": {}},
		{"isStage": false, "name": "Cat", "blocks": {"a": {"opcode": "looks_say"}}}
	],
	"meta": {"semver": "3.0.0"}
}`

func TestLoad_Directory(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteProject(t, descriptorJSON, map[string]string{"cat.svg": "<svg/>"})

	p, err := Load(context.Background(), dir)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, filepath.Base(dir), p.Name)
	assert.Equal(t, dir, p.Dir)
	assert.Equal(t, []string{"Stage", "Cat"}, p.ActorNames())
	assert.True(t, p.Actors[0].IsStage)
	assert.JSONEq(t, `{"a": {"opcode": "looks_say"}}`, string(p.Actors[1].Blocks))
}

func TestLoad_Archive(t *testing.T) {
	t.Parallel()
	archive := testutil.WriteArchive(t, "Game.sb3", map[string]string{
		"project.json":     descriptorJSON,
		"costumes/cat.svg": "<svg/>",
	})

	p, err := Load(context.Background(), archive)
	require.NoError(t, err)

	assert.Equal(t, "Game", p.Name)
	assert.Equal(t, []string{"Stage", "Cat"}, p.ActorNames())
	assert.FileExists(t, filepath.Join(p.Dir, "costumes", "cat.svg"))

	extracted := p.Dir
	require.NoError(t, p.Close())
	assert.NoDirExists(t, extracted)
	assert.NoError(t, p.Close())
}

func TestLoad_FatalInput(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing path",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
		},
		{
			name: "missing descriptor",
			path: func(t *testing.T) string { return testutil.WriteFiles(t, map[string]string{"a.txt": "x"}) },
		},
		{
			name: "malformed descriptor",
			path: func(t *testing.T) string { return testutil.WriteProject(t, `{"targets": [`, nil) },
		},
		{
			name: "descriptor without targets",
			path: func(t *testing.T) string { return testutil.WriteProject(t, `{"objName": "Stage"}`, nil) },
		},
		{
			name: "not an archive",
			path: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "broken.sb3")
				require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))
				return path
			},
		},
		{
			name: "archive escaping its directory",
			path: func(t *testing.T) string {
				return testutil.WriteArchive(t, "evil.sb3", map[string]string{"../evil.txt": "x"})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(context.Background(), tc.path(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFatalInput)
		})
	}
}

func TestDecode_ByteOrderMarks(t *testing.T) {
	t.Parallel()
	const doc = `{"targets": [{"name": "Ünïcode"}]}`

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(doc)
	require.NoError(t, err)

	testCases := map[string]string{
		"plain":    doc,
		"utf-8":    "\xef\xbb\xbf" + doc,
		"utf-16le": utf16,
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			actors, err := Decode(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, actors, 1)
			assert.Equal(t, "Ünïcode", actors[0].Name)
		})
	}
}
