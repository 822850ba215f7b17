package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIndex(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, IndexFileName), []byte(content), 0644))
}

func TestListPackages(t *testing.T) {
	t.Run("reads packages from a root", func(t *testing.T) {
		root := t.TempDir()
		writeIndex(t, root, `packages:
  - id: punkt
    name: Punkt sentence tokenizer models
    version: 1.2.0
  - id: stopwords
    name: Stopword lists
    version: 0.9.1
`)

		packages, err := ListPackages([]string{root})
		require.NoError(t, err)
		require.Len(t, packages, 2)

		// Sorted by id
		assert.Equal(t, "punkt", packages[0].ID)
		assert.Equal(t, "1.2.0", packages[0].Version)
		assert.Equal(t, root, packages[0].Root)
		assert.Equal(t, "stopwords", packages[1].ID)
	})

	t.Run("highest version wins across roots", func(t *testing.T) {
		older := t.TempDir()
		newer := t.TempDir()
		writeIndex(t, older, "packages:\n  - {id: punkt, name: Punkt, version: 1.0.0}\n")
		writeIndex(t, newer, "packages:\n  - {id: punkt, name: Punkt, version: 1.3.0}\n")

		packages, err := ListPackages([]string{older, newer})
		require.NoError(t, err)
		require.Len(t, packages, 1)
		assert.Equal(t, "1.3.0", packages[0].Version)
		assert.Equal(t, newer, packages[0].Root)
	})

	t.Run("invalid versions are skipped", func(t *testing.T) {
		root := t.TempDir()
		writeIndex(t, root, `packages:
  - {id: punkt, name: Punkt, version: not-a-version}
  - {id: stopwords, name: Stopwords, version: 2.0.0}
`)

		packages, err := ListPackages([]string{root})
		require.NoError(t, err)
		require.Len(t, packages, 1)
		assert.Equal(t, "stopwords", packages[0].ID)
	})

	t.Run("entries without id are skipped", func(t *testing.T) {
		root := t.TempDir()
		writeIndex(t, root, "packages:\n  - {name: Nameless, version: 1.0.0}\n")

		packages, err := ListPackages([]string{root})
		require.NoError(t, err)
		assert.Empty(t, packages)
	})

	t.Run("roots without an index are fine", func(t *testing.T) {
		packages, err := ListPackages([]string{t.TempDir(), "/does/not/exist"})
		require.NoError(t, err)
		assert.Empty(t, packages)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		root := t.TempDir()
		writeIndex(t, root, "packages: [i am: not: yaml\n")

		_, err := ListPackages([]string{root})
		assert.Error(t, err)
	})
}
