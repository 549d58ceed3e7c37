package docindex

import (
	"fmt"
	"strings"
)

// RenderPrompt serializes the index into the sections block injected into the
// assistant's system prompt. Each document gets a heading line followed by one
// bullet per section, indented two spaces per nesting step, with the section
// title rendered as a citation link.
//
// The link syntax must stay byte-exact: the assistant copies these targets
// into its answers and the client's citation interceptor pattern-matches
// /ref/{docSlug}/{sectionSlug} verbatim.
func RenderPrompt(index []DocumentIndex) string {
	var lines []string
	for _, doc := range index {
		lines = append(lines, fmt.Sprintf("### %s (%s)", doc.DocTitle, doc.DocSlug))
		for _, section := range doc.Sections {
			indent := strings.Repeat("  ", section.Level-2)
			lines = append(lines, fmt.Sprintf("%s- [%s](/ref/%s/%s)", indent, section.Title, doc.DocSlug, section.Slug))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
