package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "README.md", "# Handbook\n\nStart here.")
	writeDoc(t, dir, "02-setup.md", "# Setup\n\nInstall the tools.")
	writeDoc(t, dir, "01-intro.md", "# Intro\n\nWelcome aboard.")
	writeDoc(t, dir, "notes.txt", "not markdown")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	writeDoc(t, filepath.Join(dir, "nested"), "ignored.md", "# Ignored")

	docs, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, docs, 3)

	// Ordered by filename
	assert.Equal(t, "01-intro", docs[0].Slug)
	assert.Equal(t, "02-setup", docs[1].Slug)
	assert.Equal(t, "README", docs[2].Slug)

	assert.Equal(t, "Intro", docs[0].Title)
	assert.Equal(t, "Welcome aboard.", docs[0].Description)
	assert.Equal(t, 1, docs[0].SortOrder)
	assert.Equal(t, 2, docs[1].SortOrder)
	assert.Equal(t, 0, docs[2].SortOrder)

	for _, doc := range docs {
		assert.Len(t, doc.Hash, 16, "hash should be 16 hex chars for %s", doc.Slug)
		assert.NotEmpty(t, doc.Content)
	}
}

func TestLoadDir_HashTracksContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "# A\n\nsame")
	writeDoc(t, dir, "b.md", "# A\n\nsame")
	writeDoc(t, dir, "c.md", "# A\n\ndifferent")

	docs, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, docs[0].Hash, docs[1].Hash, "identical content must hash identically")
	assert.NotEqual(t, docs[0].Hash, docs[2].Hash, "different content must hash differently")
}

func TestLoadDir_EmptyDir(t *testing.T) {
	t.Parallel()

	docs, err := LoadDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoadDir_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadDir_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "# A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}
