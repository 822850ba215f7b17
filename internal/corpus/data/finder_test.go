package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResource(t *testing.T, root string, parts ...string) string {
	t.Helper()

	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
	return path
}

func TestFind(t *testing.T) {
	t.Run("finds resource under a root", func(t *testing.T) {
		root := t.TempDir()
		want := writeResource(t, root, "tokenizers", "punkt", "english.params")

		got, err := Find("tokenizers/punkt/english.params", []string{root})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("roots searched in order", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		want := writeResource(t, first, "stopwords", "english")
		writeResource(t, second, "stopwords", "english")

		got, err := Find("stopwords/english", []string{first, second})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("expands tilde in roots", func(t *testing.T) {
		home := t.TempDir()
		setHome(t, home)
		want := writeResource(t, home, DirName, "stopwords", "english")

		got, err := Find("stopwords/english", []string{"~/" + DirName})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("expands tilde in the resource itself", func(t *testing.T) {
		home := t.TempDir()
		setHome(t, home)
		want := writeResource(t, home, "readme.txt")

		got, err := Find("~/readme.txt", nil)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("absolute resource returned directly", func(t *testing.T) {
		root := t.TempDir()
		want := writeResource(t, root, "lexicon.txt")

		got, err := Find(want, []string{"/unrelated"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("directory resources count as found", func(t *testing.T) {
		root := t.TempDir()
		dir := filepath.Join(root, "corpora", "brown")
		require.NoError(t, os.MkdirAll(dir, 0755))

		got, err := Find("corpora/brown", []string{root})
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("miss returns NotFoundError listing roots", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()

		_, err := Find("corpora/missing", []string{first, second})
		require.Error(t, err)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "corpora/missing", notFound.Resource)
		assert.Equal(t, []string{first, second}, notFound.Roots)
		assert.Contains(t, err.Error(), first)
		assert.Contains(t, err.Error(), EnvVar)
	})

	t.Run("empty resource is an error", func(t *testing.T) {
		_, err := Find("", []string{t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("empty roots are skipped", func(t *testing.T) {
		root := t.TempDir()
		want := writeResource(t, root, "stopwords", "english")

		got, err := Find("stopwords/english", []string{"", root})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
