package outline

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/outliner/internal/lines"
)

const (
	titleWindow      = 10 // lines examined for a proper title candidate
	titleFallbackTop = 5  // lines examined for the fallback concatenation
	titleMinLen      = 20
	titleMaxLen      = 200
	titleMinSize     = 14
)

var numberOnly = regexp.MustCompile(`^\d+\.?\s*$`)

// IdentifyTitle picks the document title from the page-1 lines: the largest
// line in the top-10 window (by size, then vertical position) that looks
// like a real title. Falls back to joining the first couple of meaningful
// lines, then to the Untitled sentinel.
func IdentifyTitle(ls []lines.FormattedLine) string {
	var first []lines.FormattedLine
	for _, l := range ls {
		if l.Page == 1 {
			first = append(first, l)
		}
	}
	if len(first) == 0 {
		return TitleUntitled
	}

	// Largest font first; topmost on the page breaks ties.
	sort.SliceStable(first, func(i, j int) bool {
		if first[i].Size != first[j].Size {
			return first[i].Size > first[j].Size
		}
		return first[i].BBox.Y0 < first[j].BBox.Y0
	})

	window := first
	if len(window) > titleWindow {
		window = window[:titleWindow]
	}

	best := ""
	bestSize := -1.0
	for _, l := range window {
		if !isTitleCandidate(l) {
			continue
		}
		// Strictly larger wins, so ties keep the earliest in sorted order.
		if l.Size > bestSize {
			best, bestSize = strings.TrimSpace(l.Text), l.Size
		}
	}
	if best != "" {
		return cleanTitle(best)
	}

	// Fallback: join up to two meaningful lines from the top of the order.
	top := first
	if len(top) > titleFallbackTop {
		top = top[:titleFallbackTop]
	}
	var parts []string
	for _, l := range top {
		text := strings.TrimSpace(l.Text)
		if utf8.RuneCountInString(text) > 5 && len(strings.Fields(text)) >= 2 {
			parts = append(parts, text)
			if len(parts) == 2 {
				break
			}
		}
	}
	if len(parts) > 0 {
		combined := strings.Join(parts, " ")
		if utf8.RuneCountInString(combined) <= titleMaxLen {
			return strings.Join(strings.Fields(combined), " ")
		}
	}

	return TitleUntitled
}

func isTitleCandidate(l lines.FormattedLine) bool {
	text := strings.TrimSpace(l.Text)
	n := utf8.RuneCountInString(text)
	return n >= titleMinLen && n <= titleMaxLen &&
		l.Size >= titleMinSize &&
		!numberOnly.MatchString(text) &&
		!strings.HasPrefix(strings.ToLower(text), "page") &&
		len(strings.Fields(text)) >= 2
}

// cleanTitle replaces everything but letters, digits, whitespace,
// underscores, hyphens, colons and periods with a space, then collapses
// whitespace.
func cleanTitle(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			return r
		case r == '_', r == '-', r == ':', r == '.':
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}
