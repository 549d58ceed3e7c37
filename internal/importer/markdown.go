package importer

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const maxDescriptionRunes = 200

// parser is shared; goldmark parsers are safe for concurrent use.
var parser = goldmark.New()

// extractMeta pulls the document title and description out of markdown
// content. Title preference: first # heading, then first ## heading, then the
// filename with words capitalized. Description is the first paragraph's text,
// truncated.
func extractMeta(content []byte, filename string) (title, description string) {
	if len(content) == 0 {
		return titleFromFilename(filename), ""
	}

	doc := parser.Parser().Parse(text.NewReader(content))

	var firstH1, firstH2, firstParagraph string

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := nodeText(node, content)
			if node.Level == 1 && firstH1 == "" {
				firstH1 = headingText
			} else if node.Level == 2 && firstH2 == "" && firstH1 == "" {
				firstH2 = headingText
			}
		case *ast.Paragraph:
			if firstParagraph == "" {
				firstParagraph = nodeText(node, content)
			}
			return ast.WalkSkipChildren, nil
		}

		if firstH1 != "" && firstParagraph != "" {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	switch {
	case firstH1 != "":
		title = firstH1
	case firstH2 != "":
		title = firstH2
	default:
		title = titleFromFilename(filename)
	}

	return title, truncateRunes(firstParagraph, maxDescriptionRunes)
}

// titleFromFilename derives a title from a filename by removing the extension
// and capitalizing words.
func titleFromFilename(filename string) string {
	name := filepath.Base(filename)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// nodeText extracts the plain text content of a node and its children.
func nodeText(n ast.Node, content []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(content))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// sortOrderFromName reads a numeric filename prefix ("03-change-management.md"
// sorts at 3). Files without a prefix sort at 0.
func sortOrderFromName(filename string) int {
	name := filepath.Base(filename)
	prefix, _, ok := strings.Cut(name, "-")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return n
}
