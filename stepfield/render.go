package stepfield

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/stepnav/grid"
)

// Text renders f as a block of right-aligned step counts, one row per Y from
// the smallest to the largest present Y. Unreachable cells print as "-" and
// points outside the field print as blanks.
func (f *Field) Text() string {
	if len(f.order) == 0 {
		return ""
	}
	lo, hi := f.order[0], f.order[0]
	width := 1
	for p, s := range f.steps {
		lo = grid.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = grid.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
		if s != Unreachable {
			width = max(width, len(strconv.Itoa(s)))
		}
	}

	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if x > lo.X {
				b.WriteByte(' ')
			}
			cell := " "
			if s, ok := f.steps[grid.Pt(x, y)]; ok {
				cell = "-"
				if s != Unreachable {
					cell = strconv.Itoa(s)
				}
			}
			b.WriteString(strings.Repeat(" ", width-len(cell)))
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
