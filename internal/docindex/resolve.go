package docindex

// Range is a 1-based inclusive line span within a document.
type Range struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

// ResolveRange returns the line range of the first section whose slug matches
// sectionSlug, or nil when no section matches. A miss is not an error: the
// model may cite a stale or misspelled slug, and the document should still
// render without a highlight.
//
// When two sections in the same document normalize to the same slug the first
// wins. The sections prompt is generated from the same index, so links the
// assistant emits resolve consistently under that rule.
func ResolveRange(sections []Section, sectionSlug string) *Range {
	for _, section := range sections {
		if section.Slug == sectionSlug {
			return &Range{StartLine: section.StartLine, EndLine: section.EndLine}
		}
	}
	return nil
}
