package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestResource(t *testing.T, root string, parts ...string) string {
	t.Helper()

	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
	return path
}

func TestFindCommand(t *testing.T) {
	t.Run("prints the resolved path", func(t *testing.T) {
		setupCmdTest(t)
		root := t.TempDir()
		want := writeTestResource(t, root, "stopwords", "english")
		t.Setenv("CORPUS_DATA", root)

		out, err := executeCommand(t, "find", "stopwords/english")
		require.NoError(t, err)
		assert.Equal(t, want+"\n", out)
	})

	t.Run("finds resources in the home data dir", func(t *testing.T) {
		_, homeDir := setupCmdTest(t)
		want := writeTestResource(t, homeDir, "corpus_data", "corpora", "brown", "cats.txt")

		out, err := executeCommand(t, "find", "corpora/brown/cats.txt")
		require.NoError(t, err)
		assert.Equal(t, want+"\n", out)
	})

	t.Run("not found exits with the resource exit code", func(t *testing.T) {
		setupCmdTest(t)

		_, err := executeCommand(t, "find", "corpora/missing")
		require.Error(t, err)

		exitErr, ok := err.(interface{ ExitCode() int })
		require.True(t, ok, "error should carry an exit code")
		assert.Equal(t, ExitResourceNotFound, exitErr.ExitCode())
		assert.True(t, strings.Contains(err.Error(), "corpora/missing"))
	})
}
