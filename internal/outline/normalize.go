package outline

import (
	"regexp"
	"strings"
)

var (
	numberedPrefix = regexp.MustCompile(`^\d+\.`)
	trailingPunct  = regexp.MustCompile(`[.,:;!?]+$`)
)

// CleanHeadingText normalizes heading text: whitespace runs collapse to
// single spaces, trailing punctuation goes away unless the heading starts
// with a numbered-section prefix (the numbering relies on its period), and
// one layer of surrounding quotes is removed.
func CleanHeadingText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if !numberedPrefix.MatchString(text) {
		text = trailingPunct.ReplaceAllString(text, "")
	}
	return trimQuotes(text)
}

func trimQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}
