package lines

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLSource extracts formatted lines from HTML. The <title> contributes a
// page-1 line at the largest synthetic size; h1..h6 become heading-sized
// bold lines; paragraph-like elements become body-sized lines.
type HTMLSource struct{}

func (s *HTMLSource) Extract(r io.Reader, filename string) ([]FormattedLine, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var out []FormattedLine
	place := &linePlacer{perPage: 40}

	emit := func(text string, size float64, bold bool) {
		for _, part := range strings.Split(text, "\n") {
			page, bbox := place.next(size)
			if l, ok := newLine(part, page, "", size, bold, bbox); ok {
				out = append(out, l)
			}
		}
	}

	if title := findTitle(doc); title != "" {
		emit(title, syntheticTitleSize, true)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				emit(nodeText(n), syntheticHeadingSize(level), true)
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				emit(nodeText(n), syntheticBodySize, false)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return out, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return nodeText(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
