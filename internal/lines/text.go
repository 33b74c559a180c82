package lines

import (
	"bufio"
	"io"
)

// TextSource extracts formatted lines from plain text. Every line gets the
// body size, so outline discovery falls back entirely on the pattern and
// case rules of the classifier.
type TextSource struct{}

func (s *TextSource) Extract(r io.Reader, filename string) ([]FormattedLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []FormattedLine
	place := &linePlacer{perPage: 50}

	for scanner.Scan() {
		page, bbox := place.next(syntheticBodySize)
		if l, ok := newLine(scanner.Text(), page, "", syntheticBodySize, false, bbox); ok {
			out = append(out, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
