package lines

import (
	"fmt"
	"io"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource extracts formatted lines from PDF files. Each text row reported
// by the decoder becomes one FormattedLine with the row's dominant font,
// average glyph size and combined extent.
type PDFSource struct{}

func (s *PDFSource) Extract(r io.Reader, filename string) ([]FormattedLine, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	return extractPDFLines(tmpPath)
}

func extractPDFLines(path string) ([]FormattedLine, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var out []FormattedLine
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A single undecodable page should not sink the document.
			continue
		}
		height := pageHeight(page)
		for _, row := range rows {
			if line, ok := mergeRow(row, i, height); ok {
				out = append(out, line)
			}
		}
	}
	return out, nil
}

// mergeRow combines the positioned text runs of one visual row into a single
// FormattedLine: text joined with gap-based spacing, size averaged across
// runs, font by majority vote, bold if any run's font looks bold.
func mergeRow(row *pdflib.Row, page int, pageHeight float64) (FormattedLine, bool) {
	if len(row.Content) == 0 {
		return FormattedLine{}, false
	}

	var (
		text      strings.Builder
		sizeSum   float64
		fontVotes = make(map[string]int)
		bold      bool
		x0, x1    float64
		prevEnd   float64
	)

	for i, t := range row.Content {
		if i == 0 {
			x0 = t.X
		} else if t.X-prevEnd > t.FontSize*0.3 {
			// Gap between runs wide enough to be a word break.
			text.WriteByte(' ')
		}
		text.WriteString(t.S)
		prevEnd = t.X + t.W
		if t.X+t.W > x1 {
			x1 = t.X + t.W
		}
		sizeSum += t.FontSize
		fontVotes[t.Font]++
		if isBoldFont(t.Font) {
			bold = true
		}
	}

	size := sizeSum / float64(len(row.Content))

	font := ""
	best := 0
	for name, n := range fontVotes {
		if n > best {
			font, best = name, n
		}
	}

	// Flip to top-origin coordinates so smaller Y0 means higher on the page.
	y0 := pageHeight - float64(row.Position)
	bbox := BoundingBox{X0: x0, Y0: y0, X1: x1, Y1: y0 + size}

	return newLine(text.String(), page, font, size, bold, bbox)
}

func isBoldFont(font string) bool {
	lower := strings.ToLower(font)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}

// pageHeight reads the MediaBox height, falling back to US Letter.
func pageHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.Kind() == pdflib.Array && box.Len() == 4 {
		if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
			return h
		}
	}
	return 792
}
