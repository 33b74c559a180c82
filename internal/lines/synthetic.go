package lines

// Structured formats (markdown, HTML, DOCX, plain text) carry explicit
// heading levels instead of glyph metrics, and no fixed pagination. Their
// sources synthesize sizes and positions so the outline engine can treat
// every format the same way: heading levels map to sizes above the body
// size, and lines are laid out on synthetic pages top to bottom.
const (
	syntheticBodySize  = 12.0
	syntheticTitleSize = 28.0
)

// syntheticHeadingSize maps a structural heading level to a glyph size that
// lands in the matching size tier of a body-size-12 document.
func syntheticHeadingSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 17
	case 3:
		return 14.5
	default:
		return 13
	}
}

// linePlacer hands out synthetic page numbers and positions for formats
// without fixed pagination.
type linePlacer struct {
	perPage int // lines per synthetic page
	index   int
}

func (p *linePlacer) next(size float64) (page int, bbox BoundingBox) {
	per := p.perPage
	if per <= 0 {
		per = 40
	}
	page = p.index/per + 1
	slot := p.index % per
	p.index++
	y := 72 + float64(slot)*18
	return page, BoundingBox{X0: 72, Y0: y, X1: 540, Y1: y + size}
}
