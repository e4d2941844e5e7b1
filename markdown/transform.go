package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// headingIDTransformer assigns a deterministic slug id to every heading
// (levels 1-6) derived from its flattened text. Duplicate slugs within one
// document are suffixed -1, -2, ... so ids stay unique.
type headingIDTransformer struct{}

func (headingIDTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	seen := map[string]int{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		slug := Slugify(flattenText(h, reader.Source()))
		if slug == "" {
			slug = "section"
		}
		if count := seen[slug]; count > 0 {
			seen[slug] = count + 1
			slug = fmt.Sprintf("%s-%d", slug, count)
		} else {
			seen[slug] = 1
		}
		h.SetAttributeString("id", []byte(slug))
		return ast.WalkSkipChildren, nil
	})
}

// flattenText collects the raw text content of a node's subtree.
func flattenText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
		case *ast.String:
			buf.Write(c.Value)
		default:
			if child.HasChildren() {
				buf.WriteString(flattenText(child, source))
			}
		}
	}
	return buf.String()
}
