package grid

import (
	"strings"
	"unicode/utf8"
)

// DefaultWalkableRune marks a walkable cell in ParseText input.
const DefaultWalkableRune = '-'

// TextOptions configures ParseText.
type TextOptions struct {
	// Walkable lists the runes that denote walkable cells.
	Walkable []rune
}

// TextOption is a functional option for ParseText.
type TextOption func(*TextOptions)

// WithWalkable replaces the set of walkable runes.
func WithWalkable(runes ...rune) TextOption {
	return func(o *TextOptions) {
		if len(runes) > 0 {
			o.Walkable = runes
		}
	}
}

// DefaultTextOptions returns TextOptions with '-' as the only walkable rune.
func DefaultTextOptions() TextOptions {
	return TextOptions{Walkable: []rune{DefaultWalkableRune}}
}

// ParseText builds a dense walkability grid from a rectangular-ish text block.
//
// Row index is Y and rune index within the row is X, both from 0. The extent
// is (0,0)..(W−1,H−1) where W is the longest row in runes. Every rune inside a
// row becomes a present cell, walkable iff it is one of the walkable runes.
// Cells past the end of a short row stay absent, so they read as
// non-walkable rather than faulting. A single trailing newline is ignored and
// "\r\n" line endings are accepted.
//
// Returns ErrEmptyGrid if the text holds no runes.
func ParseText(text string, opts ...TextOption) (*Grid[bool], error) {
	o := DefaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	text = strings.TrimSuffix(text, "\n")
	rows := strings.Split(text, "\n")
	width := 0
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
		width = max(width, utf8.RuneCountInString(rows[i]))
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	g, err := NewDense[bool](Pt(0, 0), Pt(width-1, len(rows)-1))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			// Set cannot fail: x < width and y < len(rows) by construction.
			_ = g.Set(Pt(x, y), isWalkableRune(r, o.Walkable))
			x++
		}
	}
	return g, nil
}

func isWalkableRune(r rune, walkable []rune) bool {
	for _, w := range walkable {
		if r == w {
			return true
		}
	}
	return false
}

// FormatText renders a bool grid as text; the output parses back with
// ParseText when Min() is the origin. Walkable cells print as '-', present
// non-walkable cells as '#', and absent cells inside the bounds as ' '.
// Rows run from Min().Y to Max().Y with trailing blanks trimmed.
func FormatText(g *Grid[bool]) string {
	if g.Len() == 0 {
		return ""
	}
	var b strings.Builder
	lo, hi := g.Min(), g.Max()
	for y := lo.Y; y <= hi.Y; y++ {
		row := make([]rune, 0, hi.X-lo.X+1)
		for x := lo.X; x <= hi.X; x++ {
			v, ok := g.TryGet(Pt(x, y))
			switch {
			case !ok:
				row = append(row, ' ')
			case v:
				row = append(row, DefaultWalkableRune)
			default:
				row = append(row, '#')
			}
		}
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
