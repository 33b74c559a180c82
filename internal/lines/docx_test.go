package lines

import "testing"

func TestDocxStyleLevel(t *testing.T) {
	cases := map[string]int{
		"Heading1":  1,
		"heading 2": 2,
		"HEADING3":  3,
		"Heading6":  6,
		"Normal":    0,
		"":          0,
		"Title":     0,
	}
	for style, want := range cases {
		if got := docxStyleLevel(style); got != want {
			t.Errorf("docxStyleLevel(%q): expected %d, got %d", style, want, got)
		}
	}
}

func TestSyntheticHeadingSize_AboveBody(t *testing.T) {
	for level := 1; level <= 6; level++ {
		if size := syntheticHeadingSize(level); size <= syntheticBodySize {
			t.Errorf("level %d: expected size above body size, got %v", level, size)
		}
	}
	// Deeper levels never outrank shallower ones.
	for level := 2; level <= 6; level++ {
		if syntheticHeadingSize(level) > syntheticHeadingSize(level-1) {
			t.Errorf("level %d larger than level %d", level, level-1)
		}
	}
}
