package lines

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// BoundingBox is a line's extent in page coordinates. The origin is the top
// left of the page, so a smaller Y0 means higher on the page.
type BoundingBox struct {
	X0, Y0, X1, Y1 float64
}

// FormattedLine is one visually merged line of document text with the
// formatting metadata the outline engine scores against. Spans belonging to
// the same visual line are merged by the source that produced it.
type FormattedLine struct {
	Text      string
	Page      int // 1-based
	Font      string
	Size      float64
	Bold      bool
	BBox      BoundingBox
	WordCount int
}

// Source converts raw document bytes into formatted lines.
type Source interface {
	Extract(r io.Reader, filename string) ([]FormattedLine, error)
}

// SupportedExtensions lists file extensions a source exists for.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".txt":
		return &TextSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension has a source.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// FromFile extracts the formatted lines of a document on disk.
func FromFile(path string) ([]FormattedLine, error) {
	src, err := ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	ls, err := src.Extract(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("extract lines from %s: %w", filepath.Base(path), err)
	}
	return ls, nil
}

// newLine trims and validates text before building a FormattedLine. Lines of
// three or more characters survive; shorter fragments are noise.
func newLine(text string, page int, font string, size float64, bold bool, bbox BoundingBox) (FormattedLine, bool) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= 2 {
		return FormattedLine{}, false
	}
	return FormattedLine{
		Text:      text,
		Page:      page,
		Font:      font,
		Size:      size,
		Bold:      bold,
		BBox:      bbox,
		WordCount: len(strings.Fields(text)),
	}, true
}
