package outline

import (
	"sort"

	"github.com/dgallion1/outliner/internal/lines"
)

// Thresholds are the size cutoffs for the three heading tiers, derived from
// the body text size. H1 > H2 > H3 always holds for a positive body size.
type Thresholds struct {
	H1 float64 // body * 1.5
	H2 float64 // body * 1.3
	H3 float64 // body * 1.15
}

// Structure is the document-wide size statistics one classification run
// works from. Computed once per document, never mutated.
type Structure struct {
	BodyTextSize float64
	Thresholds   Thresholds
	AllSizes     []float64 // distinct sizes, descending
}

// AnalyzeStructure computes the size mode and tier thresholds for one
// document. Undefined on an empty line set; callers guard for that. When
// several sizes are equally frequent the first one seen wins; the tie-break
// is incidental and nothing downstream may rely on it.
func AnalyzeStructure(ls []lines.FormattedLine) Structure {
	counts := make(map[float64]int, len(ls))
	var order []float64
	for _, l := range ls {
		if counts[l.Size] == 0 {
			order = append(order, l.Size)
		}
		counts[l.Size]++
	}

	body := order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[body] {
			body = s
		}
	}

	sizes := append([]float64(nil), order...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	return Structure{
		BodyTextSize: body,
		Thresholds: Thresholds{
			H1: body * 1.5,
			H2: body * 1.3,
			H3: body * 1.15,
		},
		AllSizes: sizes,
	}
}
