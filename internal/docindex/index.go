package docindex

// Document is the subset of a stored document the indexer reads. Content is
// treated as immutable for the duration of one indexing pass.
type Document struct {
	Slug    string
	Title   string
	Content string
}

// DocumentIndex holds the ordered sections of one document.
type DocumentIndex struct {
	DocSlug  string    `json:"docSlug"`
	DocTitle string    `json:"docTitle"`
	Sections []Section `json:"sections"`
}

// IndexDocSlug is the reserved slug of the overview document. It is served
// whole as the docs landing page and is never split into addressable sections.
const IndexDocSlug = "README"

// BuildIndex parses every document into a DocumentIndex, preserving input
// order and skipping the reserved overview document. The index is rebuilt
// from current content on every call; nothing is cached between calls.
func BuildIndex(docs []Document) []DocumentIndex {
	results := make([]DocumentIndex, 0, len(docs))
	for _, doc := range docs {
		if doc.Slug == IndexDocSlug {
			continue
		}
		results = append(results, DocumentIndex{
			DocSlug:  doc.Slug,
			DocTitle: doc.Title,
			Sections: ParseSections(doc.Content),
		})
	}
	return results
}
