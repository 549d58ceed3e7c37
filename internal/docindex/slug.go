package docindex

import (
	"regexp"
	"strings"
)

var (
	slugStripRe  = regexp.MustCompile(`[^\w\s-]`)
	slugHyphenRe = regexp.MustCompile(`\s+`)
	slugTrimRe   = regexp.MustCompile(`^-+|-+$`)
)

// Slugify maps heading text to a URL-safe identifier: lower-case, punctuation
// stripped, whitespace runs collapsed to single hyphens, leading/trailing
// hyphens trimmed.
//
// The web client assigns heading IDs with the same algorithm at render time,
// so citation links produced against this output resolve against those IDs.
// Any change here must be mirrored there.
//
// Slugify gives no uniqueness guarantee: two headings with the same text
// produce the same slug (see ResolveRange).
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	s = slugTrimRe.ReplaceAllString(s, "")
	return s
}
