package outline

import (
	"sort"
	"strings"
)

// stopWords are single function words that occasionally survive scoring as
// candidates. Matched on case-folded trimmed text.
var stopWords = map[string]struct{}{
	"a": {}, "and": {}, "or": {}, "the": {}, "of": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "with": {}, "by": {},
}

// FilterHeadings drops stop-word headings and text-level duplicates. The
// first occurrence of a duplicate wins; uniqueness is global to the
// document, not per page.
func FilterHeadings(hs []Heading) []Heading {
	seen := make(map[string]struct{}, len(hs))
	out := make([]Heading, 0, len(hs))
	for _, h := range hs {
		key := strings.ToLower(strings.TrimSpace(h.Text))
		if _, ok := stopWords[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, h)
	}
	return out
}

// SortMode selects the final outline ordering.
type SortMode int

const (
	// SortPageText orders headings by page, then lexicographically by
	// cleaned text. Same-page headings therefore do not follow vertical
	// reading order; this mirrors the historical output and stays the
	// default for compatibility.
	SortPageText SortMode = iota
	// SortReadingOrder orders by page and keeps per-page discovery order.
	SortReadingOrder
)

// SortHeadings orders the outline in place according to the mode.
func SortHeadings(hs []Heading, mode SortMode) {
	if mode == SortReadingOrder {
		sort.SliceStable(hs, func(i, j int) bool {
			return hs[i].Page < hs[j].Page
		})
		return
	}
	sort.SliceStable(hs, func(i, j int) bool {
		if hs[i].Page != hs[j].Page {
			return hs[i].Page < hs[j].Page
		}
		return hs[i].Text < hs[j].Text
	})
}
