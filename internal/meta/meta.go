package meta

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Meta holds the page-head fields every rendered page exposes: the HTML
// title and meta-description tags plus the canonical URL and share image.
// URL and Image are optional; empty means absent.
type Meta struct {
	Title       string
	Description string
	URL         string
	Image       string
}

const maxDescriptionRunes = 200

var md = goldmark.New()

// ExtractDescription flattens markdown into plain text suitable for an HTML
// meta description tag, capped at 200 runes. Empty input yields an empty
// string.
func ExtractDescription(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}

	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				b.Write(t.Segment.Value(src))
			}
			return ast.WalkContinue, nil
		}
		// A space between block-level chunks keeps words from fusing
		// across paragraph boundaries.
		switch n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
			b.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})

	out := strings.Join(strings.Fields(b.String()), " ")
	return truncateRunes(out, maxDescriptionRunes)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
