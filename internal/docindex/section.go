package docindex

import (
	"regexp"
	"strings"
)

// Section is a heading-delimited span of a markdown document, addressable by
// its normalized slug. Line numbers are 1-based and inclusive.
type Section struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Level     int    `json:"level"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

// Headings of depth 2-4 delimit sections. A single # is the document title
// and five or more is not treated as a section boundary.
var headingRe = regexp.MustCompile(`^(#{2,4})\s+(.+)$`)

// ParseSections scans content line by line and returns its sections in
// document order. A section runs from its heading line to the line before the
// next heading of equal or shallower level, or to the end of the document,
// so a section's range absorbs all deeper subsections beneath it.
//
// Content with no matching headings yields no sections; body text before the
// first heading belongs to no section.
func ParseSections(content string) []Section {
	lines := strings.Split(content, "\n")
	var sections []Section

	for i, line := range lines {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		title := strings.TrimSpace(m[2])
		sections = append(sections, Section{
			Slug:      Slugify(title),
			Title:     title,
			Level:     len(m[1]),
			StartLine: i + 1,
			EndLine:   len(lines),
		})
	}

	// Close each section at the next sibling-or-shallower heading. Quadratic,
	// but heading counts per document are tens at most.
	for i := range sections {
		for j := i + 1; j < len(sections); j++ {
			if sections[j].Level <= sections[i].Level {
				sections[i].EndLine = sections[j].StartLine - 1
				break
			}
		}
	}

	return sections
}
