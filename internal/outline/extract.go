package outline

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dgallion1/outliner/internal/lines"
)

// Extractor orchestrates the outline pipeline for one document at a time:
// structure analysis, title identification, heading classification,
// filtering and ordering. It holds no per-document state, so one Extractor
// can serve any number of documents concurrently.
type Extractor struct {
	log  *slog.Logger
	mode SortMode
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSortMode overrides the default (page, text) outline ordering.
func WithSortMode(mode SortMode) Option {
	return func(e *Extractor) { e.mode = mode }
}

func NewExtractor(log *slog.Logger, opts ...Option) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	e := &Extractor{log: log, mode: SortPageText}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds the outline from a document's formatted lines. A document
// with no lines yields the Empty Document sentinel without touching the
// analyzer, which is undefined on empty input.
func (e *Extractor) Extract(ls []lines.FormattedLine) Result {
	if len(ls) == 0 {
		return EmptyResult()
	}

	st := AnalyzeStructure(ls)
	title := IdentifyTitle(ls)

	headings := FilterHeadings(NewClassifier(st).Classify(ls))
	SortHeadings(headings, e.mode)
	if headings == nil {
		headings = []Heading{}
	}

	return Result{Title: title, Outline: headings}
}

// ExtractFile reads a document through its formatted-line source and builds
// the outline. On failure the error is returned and no partial result
// survives; callers decide how to report it (the batch driver serializes
// ErrorResult in place of the document's outline). Panics anywhere in the
// pipeline are recovered here so one document cannot abort a batch.
func (e *Extractor) ExtractFile(path string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = fmt.Errorf("outline %s: panic: %v", filepath.Base(path), r)
		}
	}()

	ls, err := lines.FromFile(path)
	if err != nil {
		return Result{}, err
	}
	return e.Extract(ls), nil
}

// ExtractReader is ExtractFile for in-memory documents; the filename picks
// the source.
func (e *Extractor) ExtractReader(r io.Reader, filename string) (res Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{}
			err = fmt.Errorf("outline %s: panic: %v", filename, rec)
		}
	}()

	src, err := lines.ForFile(filename)
	if err != nil {
		return Result{}, err
	}
	ls, err := src.Extract(r, filename)
	if err != nil {
		return Result{}, fmt.Errorf("extract lines from %s: %w", filename, err)
	}
	return e.Extract(ls), nil
}
