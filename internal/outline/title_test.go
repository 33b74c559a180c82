package outline

import (
	"strings"
	"testing"

	"github.com/dgallion1/outliner/internal/lines"
)

func TestIdentifyTitle_NoFirstPageLines(t *testing.T) {
	ls := []lines.FormattedLine{
		mkLine("content on a later page only", 2, 12, false, 100),
	}
	if got := IdentifyTitle(ls); got != TitleUntitled {
		t.Errorf("expected %q, got %q", TitleUntitled, got)
	}
}

func TestIdentifyTitle_PicksQualifyingCandidate(t *testing.T) {
	// "Acme Corp" is too short to qualify even at the largest size;
	// "Quarterly Report 2024" is the only real candidate.
	ls := []lines.FormattedLine{
		mkLine("Acme Corp", 1, 24, true, 50),
		mkLine("Quarterly Report 2024", 1, 20, false, 100),
		mkLine("Page 1", 1, 10, false, 700),
	}
	if got := IdentifyTitle(ls); got != "Quarterly Report 2024" {
		t.Errorf("expected %q, got %q", "Quarterly Report 2024", got)
	}
}

func TestIdentifyTitle_LargestCandidateWins(t *testing.T) {
	ls := []lines.FormattedLine{
		mkLine("A Subtitle Of Reasonable Length", 1, 16, false, 120),
		mkLine("The Main Document Title Here", 1, 22, true, 60),
	}
	if got := IdentifyTitle(ls); got != "The Main Document Title Here" {
		t.Errorf("expected %q, got %q", "The Main Document Title Here", got)
	}
}

func TestIdentifyTitle_CleansSpecialCharacters(t *testing.T) {
	ls := []lines.FormattedLine{
		mkLine("Annual Report* (Draft Version)!", 1, 20, false, 60),
	}
	if got := IdentifyTitle(ls); got != "Annual Report Draft Version" {
		t.Errorf("expected %q, got %q", "Annual Report Draft Version", got)
	}
}

func TestIdentifyTitle_FallbackJoinsMeaningfulLines(t *testing.T) {
	// No line reaches the candidate size, so the fallback concatenates
	// the first two meaningful lines.
	ls := []lines.FormattedLine{
		mkLine("Our Great Product", 1, 12, false, 50),
		mkLine("Release Notes 2024", 1, 12, false, 70),
		mkLine("some body text follows here", 1, 12, false, 90),
	}
	want := "Our Great Product Release Notes 2024"
	if got := IdentifyTitle(ls); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIdentifyTitle_FallbackTooLongReturnsUntitled(t *testing.T) {
	long := strings.Repeat("verylongword ", 12) + "end word" // > 150 chars
	ls := []lines.FormattedLine{
		mkLine(long, 1, 12, false, 50),
		mkLine(long, 1, 12, false, 70),
	}
	if got := IdentifyTitle(ls); got != TitleUntitled {
		t.Errorf("expected %q, got %q", TitleUntitled, got)
	}
}

func TestIdentifyTitle_IgnoresPageNumbersAndBareNumbers(t *testing.T) {
	ls := []lines.FormattedLine{
		mkLine("Page 1 of 44 in this document", 1, 20, false, 40),
		mkLine("12.", 1, 22, false, 30),
		mkLine("Operations Handbook Second Edition", 1, 18, false, 80),
	}
	if got := IdentifyTitle(ls); got != "Operations Handbook Second Edition" {
		t.Errorf("expected %q, got %q", "Operations Handbook Second Edition", got)
	}
}
