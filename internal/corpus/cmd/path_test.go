package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCommand(t *testing.T) {
	t.Run("json output lists expanded roots in order", func(t *testing.T) {
		_, homeDir := setupCmdTest(t)
		root := t.TempDir()
		t.Setenv("CORPUS_DATA", root)

		out, err := executeCommand(t, "path", "-o", "json")
		require.NoError(t, err)

		var entries []struct {
			Path   string `json:"path"`
			Exists bool   `json:"exists"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.GreaterOrEqual(t, len(entries), 2)

		assert.Equal(t, root, entries[0].Path)
		assert.True(t, entries[0].Exists)
		assert.Equal(t, homeDir+"/corpus_data", entries[1].Path)
		assert.False(t, entries[1].Exists)

		for _, entry := range entries {
			assert.NotEqual(t, byte('~'), entry.Path[0], "roots must be expanded: %s", entry.Path)
		}
	})

	t.Run("table output renders all roots", func(t *testing.T) {
		setupCmdTest(t)
		root := t.TempDir()
		t.Setenv("CORPUS_DATA", root)

		out, err := executeCommand(t, "path")
		require.NoError(t, err)
		assert.Contains(t, out, root)
		assert.Contains(t, out, "STATUS")
	})

	t.Run("data-dir flag adds a root", func(t *testing.T) {
		setupCmdTest(t)
		extra := t.TempDir()

		out, err := executeCommand(t, "path", "-o", "json", "--data-dir", extra)
		require.NoError(t, err)
		assert.Contains(t, out, extra)
	})
}
