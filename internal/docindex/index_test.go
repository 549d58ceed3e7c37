package docindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuchat/internal/docindex"
)

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	t.Run("one entry per document in input order", func(t *testing.T) {
		t.Parallel()

		docs := []docindex.Document{
			{Slug: "02-release", Title: "Releases", Content: "## Cadence\nbody"},
			{Slug: "01-intro", Title: "Introduction", Content: "## Scope\nbody"},
		}

		index := docindex.BuildIndex(docs)

		require.Len(t, index, 2)
		assert.Equal(t, "02-release", index[0].DocSlug)
		assert.Equal(t, "Releases", index[0].DocTitle)
		assert.Equal(t, "01-intro", index[1].DocSlug)
		require.Len(t, index[0].Sections, 1)
		assert.Equal(t, "cadence", index[0].Sections[0].Slug)
	})

	t.Run("skips the README overview document", func(t *testing.T) {
		t.Parallel()

		docs := []docindex.Document{
			{Slug: "README", Title: "Index", Content: "## Not Addressable"},
			{Slug: "guide", Title: "Guide", Content: "## Usage"},
		}

		index := docindex.BuildIndex(docs)

		require.Len(t, index, 1)
		assert.Equal(t, "guide", index[0].DocSlug)
	})

	t.Run("document without headings keeps an empty section list", func(t *testing.T) {
		t.Parallel()

		index := docindex.BuildIndex([]docindex.Document{{Slug: "empty", Title: "Empty", Content: ""}})

		require.Len(t, index, 1)
		assert.Empty(t, index[0].Sections)
	})
}
