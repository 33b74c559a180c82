package lines

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXSource extracts formatted lines from .docx files. Paragraphs styled
// Heading1..Heading6 become synthetic heading-sized bold lines; body
// paragraphs get the body size. DOCX has no fixed pagination, so pages are
// approximated by paragraph flow.
type DOCXSource struct{}

func (s *DOCXSource) Extract(r io.Reader, filename string) ([]FormattedLine, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var out []FormattedLine
	place := &linePlacer{perPage: 40}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}

		glyphSize := syntheticBodySize
		bold := false
		if level := docxStyleLevel(paragraphStyle(para)); level > 0 {
			glyphSize = syntheticHeadingSize(level)
			bold = true
		}

		page, bbox := place.next(glyphSize)
		if l, ok := newLine(text, page, "", glyphSize, bold, bbox); ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

// docxStyleLevel maps a Word paragraph style name to a heading level,
// 0 for body text.
func docxStyleLevel(style string) int {
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
