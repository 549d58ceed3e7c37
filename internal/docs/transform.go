package docs

import "regexp"

var (
	readmeLinkRe = regexp.MustCompile(`\]\(\.?/?README\.md\)`)
	docLinkRe    = regexp.MustCompile(`\]\(\.?/?([0-9a-z-]+)\.md\)`)
	indexNavRe   = regexp.MustCompile(`(?m)^>\s*\[[^\]]*\]\((?:\.?/?README\.md|/docs/?)\)[ \t]*\n*`)
)

// transformLinks rewrites inter-document markdown links to app routes, e.g.
// [text](03-change-management.md) → [text](/docs/03-change-management) and
// README links to the docs landing page.
func transformLinks(content string) string {
	content = readmeLinkRe.ReplaceAllString(content, "](/docs)")
	return docLinkRe.ReplaceAllString(content, "](/docs/$1)")
}

// stripIndexNav removes the leading back-to-index blockquote line some
// documents carry; the app's own navigation replaces it. Only the first
// occurrence is removed.
func stripIndexNav(content string) string {
	loc := indexNavRe.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + content[loc[1]:]
}
