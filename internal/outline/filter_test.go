package outline

import (
	"strings"
	"testing"
)

func TestFilterHeadings_DropsStopWords(t *testing.T) {
	hs := []Heading{
		{Level: LevelH1, Text: "Introduction", Page: 1},
		{Level: LevelH3, Text: "And", Page: 2},
		{Level: LevelH3, Text: "the", Page: 3},
	}
	got := FilterHeadings(hs)
	if len(got) != 1 || got[0].Text != "Introduction" {
		t.Fatalf("expected only Introduction to survive, got %+v", got)
	}
	for _, h := range got {
		key := strings.ToLower(strings.TrimSpace(h.Text))
		if _, ok := stopWords[key]; ok {
			t.Errorf("stop word %q in output", h.Text)
		}
	}
}

func TestFilterHeadings_DedupIsCaseFoldedAndGlobal(t *testing.T) {
	hs := []Heading{
		{Level: LevelH1, Text: "Overview", Page: 1},
		{Level: LevelH2, Text: "OVERVIEW", Page: 3},
		{Level: LevelH2, Text: "Details", Page: 3},
		{Level: LevelH3, Text: "overview", Page: 7},
	}
	got := FilterHeadings(hs)
	if len(got) != 2 {
		t.Fatalf("expected 2 headings after dedup, got %d: %+v", len(got), got)
	}
	// First occurrence wins, keeping its level and page.
	if got[0].Text != "Overview" || got[0].Level != LevelH1 || got[0].Page != 1 {
		t.Errorf("expected first occurrence to win, got %+v", got[0])
	}

	seen := map[string]bool{}
	for _, h := range got {
		key := strings.ToLower(h.Text)
		if seen[key] {
			t.Errorf("duplicate case-folded text %q in output", key)
		}
		seen[key] = true
	}
}

func TestSortHeadings_PageThenText(t *testing.T) {
	hs := []Heading{
		{Level: LevelH2, Text: "Zebra Patterns", Page: 2},
		{Level: LevelH1, Text: "Alpha Section", Page: 2},
		{Level: LevelH1, Text: "Last Page First Entry", Page: 1},
	}
	SortHeadings(hs, SortPageText)

	want := []string{"Last Page First Entry", "Alpha Section", "Zebra Patterns"}
	for i, w := range want {
		if hs[i].Text != w {
			t.Errorf("position %d: expected %q, got %q", i, w, hs[i].Text)
		}
	}
}

func TestSortHeadings_ReadingOrderKeepsDiscoveryOrder(t *testing.T) {
	hs := []Heading{
		{Level: LevelH1, Text: "Zebra Comes First On Its Page", Page: 2},
		{Level: LevelH2, Text: "Alpha Comes Second", Page: 2},
		{Level: LevelH1, Text: "Opening", Page: 1},
	}
	SortHeadings(hs, SortReadingOrder)

	want := []string{"Opening", "Zebra Comes First On Its Page", "Alpha Comes Second"}
	for i, w := range want {
		if hs[i].Text != w {
			t.Errorf("position %d: expected %q, got %q", i, w, hs[i].Text)
		}
	}
}
