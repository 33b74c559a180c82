package outline

import "testing"

func TestCleanHeadingText_CollapsesWhitespace(t *testing.T) {
	if got := CleanHeadingText("Getting   Started \t Guide"); got != "Getting Started Guide" {
		t.Errorf("expected collapsed whitespace, got %q", got)
	}
}

func TestCleanHeadingText_StripsTrailingPunctuation(t *testing.T) {
	cases := map[string]string{
		"Introduction:":   "Introduction",
		"Summary.":        "Summary",
		"Why It Matters?": "Why It Matters",
		"Background...":   "Background",
	}
	for in, want := range cases {
		if got := CleanHeadingText(in); got != want {
			t.Errorf("CleanHeadingText(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestCleanHeadingText_KeepsPunctuationOnNumberedSections(t *testing.T) {
	if got := CleanHeadingText("2. Background."); got != "2. Background." {
		t.Errorf("expected numbered section to keep punctuation, got %q", got)
	}
}

func TestCleanHeadingText_StripsOneLayerOfQuotes(t *testing.T) {
	if got := CleanHeadingText(`"Design Goals"`); got != "Design Goals" {
		t.Errorf("expected quotes stripped, got %q", got)
	}
	if got := CleanHeadingText(`''Nested''`); got != "'Nested'" {
		t.Errorf("expected only one quote layer stripped, got %q", got)
	}
}
