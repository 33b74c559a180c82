package lines

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource extracts formatted lines from Markdown using goldmark.
// ATX heading levels become synthetic heading-sized bold lines; everything
// else becomes body-sized lines.
type MarkdownSource struct{}

func (s *MarkdownSource) Extract(r io.Reader, filename string) ([]FormattedLine, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var out []FormattedLine
	place := &linePlacer{perPage: 40}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			size := syntheticHeadingSize(node.Level)
			page, bbox := place.next(size)
			if l, ok := newLine(title, page, "", size, true, bbox); ok {
				out = append(out, l)
			}
		default:
			for _, part := range strings.Split(blockText(n, src), "\n") {
				page, bbox := place.next(syntheticBodySize)
				if l, ok := newLine(part, page, "", syntheticBodySize, false, bbox); ok {
					out = append(out, l)
				}
			}
		}
	}
	return out, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		blockLines := n.Lines()
		for i := 0; i < blockLines.Len(); i++ {
			seg := blockLines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
