package lines

import (
	"strings"
	"testing"
)

func TestTextSource_BasicLines(t *testing.T) {
	input := "CHAPTER ONE\n\nIt was a dark and stormy night.\nab\n"
	src := &TextSource{}
	ls, err := src.Extract(strings.NewReader(input), "story.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ls) != 2 {
		t.Fatalf("expected 2 lines (blank and short ones dropped), got %d: %+v", len(ls), ls)
	}
	if ls[0].Text != "CHAPTER ONE" {
		t.Errorf("expected %q, got %q", "CHAPTER ONE", ls[0].Text)
	}
	if ls[0].Size != syntheticBodySize || ls[0].Bold {
		t.Errorf("expected body-sized regular line, got %+v", ls[0])
	}
	if ls[1].WordCount != 7 {
		t.Errorf("expected word count 7, got %d", ls[1].WordCount)
	}
}

func TestTextSource_PageApproximation(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 120; i++ {
		b.WriteString("another line of plain text\n")
	}
	src := &TextSource{}
	ls, err := src.Extract(strings.NewReader(b.String()), "long.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ls) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(ls))
	}
	if ls[0].Page != 1 {
		t.Errorf("expected first line on page 1, got %d", ls[0].Page)
	}
	if ls[119].Page != 3 {
		t.Errorf("expected line 120 on page 3, got %d", ls[119].Page)
	}
}

func TestTextSource_EmptyInput(t *testing.T) {
	src := &TextSource{}
	ls, err := src.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ls) != 0 {
		t.Errorf("expected 0 lines, got %d", len(ls))
	}
}
