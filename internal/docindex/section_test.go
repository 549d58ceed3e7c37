package docindex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuchat/internal/docindex"
)

// fifteenLineDoc has sections at lines 3 (## Alpha), 7 (### Beta) and
// 12 (## Gamma) in a 15-line document.
var fifteenLineDoc = strings.Join([]string{
	"# Guide",
	"",
	"## Alpha",
	"alpha body",
	"",
	"more alpha",
	"### Beta",
	"beta body",
	"",
	"more beta",
	"",
	"## Gamma",
	"gamma body",
	"",
	"the end",
}, "\n")

func TestParseSections(t *testing.T) {
	t.Parallel()

	t.Run("empty content yields no sections", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, docindex.ParseSections(""))
	})

	t.Run("content without headings yields no sections", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, docindex.ParseSections("just some\nbody text\n"))
	})

	t.Run("level-1 headings are not sections", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, docindex.ParseSections("# Document Title\n\nbody"))
	})

	t.Run("headings deeper than level 4 are not sections", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, docindex.ParseSections("##### Too Deep\n###### Deeper"))
	})

	t.Run("hash run without a following space is not a heading", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, docindex.ParseSections("##NoSpace\n#also-not"))
	})

	t.Run("body text before the first heading belongs to no section", func(t *testing.T) {
		t.Parallel()

		sections := docindex.ParseSections("preamble\nmore preamble\n## First\nbody")

		require.Len(t, sections, 1)
		assert.Equal(t, 3, sections[0].StartLine)
	})

	t.Run("captures slug, title and level", func(t *testing.T) {
		t.Parallel()

		sections := docindex.ParseSections("## Roles & Responsibilities  \n\n#### Deep Dive")

		require.Len(t, sections, 2)
		assert.Equal(t, "roles-responsibilities", sections[0].Slug)
		assert.Equal(t, "Roles & Responsibilities", sections[0].Title)
		assert.Equal(t, 2, sections[0].Level)
		assert.Equal(t, 4, sections[1].Level)
	})

	t.Run("round trip line ranges", func(t *testing.T) {
		t.Parallel()

		sections := docindex.ParseSections(fifteenLineDoc)

		require.Len(t, sections, 3)
		assert.Equal(t, docindex.Section{Slug: "alpha", Title: "Alpha", Level: 2, StartLine: 3, EndLine: 6}, sections[0])
		assert.Equal(t, docindex.Section{Slug: "beta", Title: "Beta", Level: 3, StartLine: 7, EndLine: 11}, sections[1])
		assert.Equal(t, docindex.Section{Slug: "gamma", Title: "Gamma", Level: 2, StartLine: 12, EndLine: 15}, sections[2])
	})

	t.Run("parsing is idempotent", func(t *testing.T) {
		t.Parallel()

		first := docindex.ParseSections(fifteenLineDoc)
		second := docindex.ParseSections(fifteenLineDoc)

		assert.Equal(t, first, second)
	})
}

func TestParseSectionsClosingBracketInvariant(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"## A",
		"### A1",
		"#### A1a",
		"### A2",
		"## B",
		"body",
		"#### B-deep",
		"tail",
	}, "\n")

	sections := docindex.ParseSections(content)
	require.Len(t, sections, 6)

	lineCount := len(strings.Split(content, "\n"))

	// Every section closes at the next sibling-or-shallower heading, or at
	// the end of the document when none follows.
	for i, s := range sections {
		want := lineCount
		for j := i + 1; j < len(sections); j++ {
			if sections[j].Level <= s.Level {
				want = sections[j].StartLine - 1
				break
			}
		}
		assert.Equal(t, want, s.EndLine, "section %q", s.Slug)
	}

	// A absorbs its subsections and stops right before B.
	assert.Equal(t, 4, sections[0].EndLine)
	// The last section extends to the document's last line.
	assert.Equal(t, lineCount, sections[5].EndLine)
}

func TestParseSectionsSlugCollision(t *testing.T) {
	t.Parallel()

	sections := docindex.ParseSections("## Setup\nfirst\n## Setup\nsecond")

	// Duplicate headings keep duplicate slugs; disambiguation is deliberately
	// not performed here (lookup is first-match).
	require.Len(t, sections, 2)
	assert.Equal(t, sections[0].Slug, sections[1].Slug)
}
