package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/outliner/internal/lines"
)

// scoreThreshold is the minimum indicator score for a line to count as a
// heading candidate.
const scoreThreshold = 3

// headingPatterns match numbered or structural headings. Read-only for the
// process lifetime.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\.\s+.+`),         // 1. Chapter Title
	regexp.MustCompile(`(?i)^\d+\.\d+\s+.+`),      // 1.1 Section Title
	regexp.MustCompile(`(?i)^\d+\.\d+\.\d+\s+.+`), // 1.1.1 Subsection Title
	regexp.MustCompile(`(?i)^chapter\s+\d+.+`),
	regexp.MustCompile(`(?i)^section\s+\d+.+`),
	regexp.MustCompile(`(?i)^appendix\s+[A-Z].+`),
}

// headingKeywords are section names common enough to count as a weak signal.
var headingKeywords = []string{
	"introduction", "overview", "background", "methodology", "results",
	"conclusion", "references", "appendix", "summary", "abstract",
	"table of contents", "revision history", "glossary", "index",
}

// rejectPatterns disqualify a line outright, whatever its score.
var rejectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),           // just numbers
	regexp.MustCompile(`(?i)^page\s+\d+`), // page numbers
	regexp.MustCompile(`^\w{1,3}$`),       // very short words
	regexp.MustCompile(`^[^\w\s]+$`),      // only punctuation
}

// Level-assignment patterns. Checked in this order; the first match wins
// before any size rule is consulted.
var (
	h1Numbered = regexp.MustCompile(`^\d+\.\s+`)
	h2Numbered = regexp.MustCompile(`^\d+\.\d+\s+`)
	h3Numbered = regexp.MustCompile(`^\d+\.\d+\.\d+\s+`)
)

// Classifier scores lines against a document's size structure and a set of
// immutable pattern and keyword tables fixed at construction.
type Classifier struct {
	structure Structure
	patterns  []*regexp.Regexp
	keywords  []string
}

func NewClassifier(st Structure) *Classifier {
	return &Classifier{
		structure: st,
		patterns:  headingPatterns,
		keywords:  headingKeywords,
	}
}

// Classify returns the heading candidates of a document in discovery order,
// with cleaned text. Candidates whose text cleans to nothing are dropped.
// Filtering, dedup and final ordering are the next stage's job.
func (c *Classifier) Classify(ls []lines.FormattedLine) []Heading {
	var candidates []Heading
	for _, l := range ls {
		if !c.IsHeading(l) {
			continue
		}
		text := CleanHeadingText(l.Text)
		if text == "" {
			continue
		}
		candidates = append(candidates, Heading{
			Level: c.Level(l),
			Text:  text,
			Page:  l.Page,
		})
	}
	return candidates
}

// IsHeading reports whether a line qualifies as a heading candidate: not
// hard-rejected and scoring at or above the threshold.
func (c *Classifier) IsHeading(l lines.FormattedLine) bool {
	text := strings.TrimSpace(l.Text)
	return !hardReject(text) && c.Score(l) >= scoreThreshold
}

// Score sums every indicator rule that fires for a line. Each rule is an
// independent, individually testable signal.
func (c *Classifier) Score(l lines.FormattedLine) int {
	text := strings.TrimSpace(l.Text)
	return c.sizeScore(l.Size) +
		boldScore(l.Bold) +
		c.patternScore(text) +
		c.keywordScore(text) +
		caseScore(text) +
		lengthScore(text)
}

// hardReject disqualifies lines no score can save: too short, too long,
// paragraph-length word counts, or one of the reject patterns.
func hardReject(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < 3 || n > 300 {
		return true
	}
	if len(strings.Fields(text)) > 20 {
		return true
	}
	for _, p := range rejectPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// sizeScore: +2 above the H3 tier cutoff, +1 above body text size.
func (c *Classifier) sizeScore(size float64) int {
	switch {
	case size > c.structure.Thresholds.H3:
		return 2
	case size > c.structure.BodyTextSize:
		return 1
	}
	return 0
}

// boldScore: +2 for bold lines.
func boldScore(bold bool) int {
	if bold {
		return 2
	}
	return 0
}

// patternScore: +3 once for a numbered or structural heading pattern.
func (c *Classifier) patternScore(text string) int {
	for _, p := range c.patterns {
		if p.MatchString(text) {
			return 3
		}
	}
	return 0
}

// keywordScore: +1 once if the text contains a common section keyword.
func (c *Classifier) keywordScore(text string) int {
	lower := strings.ToLower(text)
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			return 1
		}
	}
	return 0
}

// caseScore: +1 for short title-case text, +2 for short all-caps text.
func caseScore(text string) int {
	if isTitleCase(text) && len(strings.Fields(text)) <= 8 {
		return 1
	}
	n := utf8.RuneCountInString(text)
	if isUpperCase(text) && n >= 5 && n <= 50 {
		return 2
	}
	return 0
}

// lengthScore: +1 for text in the typical heading length range.
func lengthScore(text string) int {
	n := utf8.RuneCountInString(text)
	if n >= 5 && n <= 100 && len(strings.Fields(text)) <= 10 {
		return 1
	}
	return 0
}

// Level assigns a heading level. Numbered-section patterns outrank the size
// tiers: a "2.3 ..." line is H2 even at body text size.
func (c *Classifier) Level(l lines.FormattedLine) string {
	text := strings.TrimSpace(l.Text)
	switch {
	case h1Numbered.MatchString(text):
		return LevelH1
	case h2Numbered.MatchString(text):
		return LevelH2
	case h3Numbered.MatchString(text):
		return LevelH3
	}
	switch {
	case l.Size >= c.structure.Thresholds.H1:
		return LevelH1
	case l.Size >= c.structure.Thresholds.H2:
		return LevelH2
	}
	return LevelH3
}

// isTitleCase reports whether the text reads like a title: upper-case
// letters only start words and every word with letters starts upper-case.
func isTitleCase(s string) bool {
	hasLetter := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			hasLetter = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasLetter = true
			prevCased = true
		default:
			prevCased = false
		}
	}
	return hasLetter
}

// isUpperCase reports whether the text has at least one letter and no
// lower-case letters.
func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
