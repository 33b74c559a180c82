// Package outline infers a structural outline (document title plus a
// hierarchy of headings) from the formatted lines of a document. It is a
// heuristic classifier over font size, weight and text patterns, not a
// layout model: the document's dominant glyph size anchors three heading
// size tiers, and every line is scored against a fixed indicator set.
package outline

// Heading levels, coarsest first.
const (
	LevelH1 = "H1"
	LevelH2 = "H2"
	LevelH3 = "H3"
)

// Sentinel titles standing in for degenerate or failed extractions.
const (
	TitleUntitled = "Untitled Document"
	TitleEmpty    = "Empty Document"
	TitleError    = "Error Processing Document"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the outline of a single document. It is built once and never
// mutated afterwards.
type Result struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// EmptyResult is the sentinel for a document whose source yielded no lines.
func EmptyResult() Result {
	return Result{Title: TitleEmpty, Outline: []Heading{}}
}

// ErrorResult is the sentinel serialized in place of a document whose
// extraction failed.
func ErrorResult() Result {
	return Result{Title: TitleError, Outline: []Heading{}}
}
