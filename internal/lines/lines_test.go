package lines

import (
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	cases := map[string]any{
		"report.pdf":   &PDFSource{},
		"notes.docx":   &DOCXSource{},
		"index.html":   &HTMLSource{},
		"page.htm":     &HTMLSource{},
		"readme.md":    &MarkdownSource{},
		"plain.txt":    &TextSource{},
		"UPPER.PDF":    &PDFSource{},
		"doc.markdown": &MarkdownSource{},
	}
	for name, want := range cases {
		src, err := ForFile(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if gotT, wantT := typeName(src), typeName(want); gotT != wantT {
			t.Errorf("%s: expected %s, got %s", name, wantT, gotT)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *PDFSource:
		return "PDFSource"
	case *DOCXSource:
		return "DOCXSource"
	case *HTMLSource:
		return "HTMLSource"
	case *MarkdownSource:
		return "MarkdownSource"
	case *TextSource:
		return "TextSource"
	}
	return "unknown"
}

func TestForFile_UnsupportedExtension(t *testing.T) {
	if _, err := ForFile("archive.zip"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("file.pdf") {
		t.Error("expected .pdf to be supported")
	}
	if IsSupportedExtension("file.exe") {
		t.Error("expected .exe to be unsupported")
	}
}

func TestNewLine_RejectsShortFragments(t *testing.T) {
	if _, ok := newLine("  ab ", 1, "", 12, false, BoundingBox{}); ok {
		t.Error("expected two-character fragment to be rejected")
	}
	l, ok := newLine("  a real line  ", 3, "Helvetica", 12, true, BoundingBox{Y0: 100})
	if !ok {
		t.Fatal("expected line to be accepted")
	}
	if l.Text != "a real line" {
		t.Errorf("expected trimmed text, got %q", l.Text)
	}
	if l.WordCount != 3 {
		t.Errorf("expected word count 3, got %d", l.WordCount)
	}
	if l.Page != 3 || !l.Bold {
		t.Errorf("expected metadata preserved, got %+v", l)
	}
}

func TestLinePlacer_PageRollover(t *testing.T) {
	p := &linePlacer{perPage: 3}
	var pages []int
	var ys []float64
	for i := 0; i < 7; i++ {
		page, bbox := p.next(12)
		pages = append(pages, page)
		ys = append(ys, bbox.Y0)
	}
	want := []int{1, 1, 1, 2, 2, 2, 3}
	for i, w := range want {
		if pages[i] != w {
			t.Errorf("line %d: expected page %d, got %d", i, w, pages[i])
		}
	}
	// Within a page, y increases top to bottom.
	if !(ys[0] < ys[1] && ys[1] < ys[2]) {
		t.Errorf("expected increasing y within a page, got %v", ys[:3])
	}
	if ys[3] != ys[0] {
		t.Errorf("expected y to reset on a new page, got %v then %v", ys[0], ys[3])
	}
}
