package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/BlockFit/internal/model"
)

// cellScale returns how many character rows each board cell takes. Blocks
// with a short side of 1 or 2 need extra room for their dimension label.
// A cell is always twice as wide as it is tall.
func cellScale(p model.Puzzle) int {
	if len(p.Blocks) == 0 {
		return 1
	}
	minSide := p.Blocks[0].MinSide()
	for _, b := range p.Blocks[1:] {
		minSide = min(minSide, b.MinSide())
	}
	switch minSide {
	case 1:
		return 3
	case 2:
		return 2
	default:
		return 1
	}
}

// Header returns the status line printed above the board.
func Header(p model.Puzzle, sol model.Solution) string {
	switch {
	case len(sol.Placements) == 0:
		return "Empty target"
	case len(sol.Placements) == len(p.Blocks):
		return "Solution!"
	default:
		return "Partially filled target"
	}
}

// RenderText draws the board as ASCII art. Every placed rectangle is outlined
// with '+', '-' and '|' and labelled with its dimensions; uncovered positions
// print as '.'.
func RenderText(p model.Puzzle, sol model.Solution) string {
	var b strings.Builder
	b.WriteString(Header(p, sol))
	b.WriteByte('\n')

	m := cellScale(p)
	rows := p.Height * m
	cols := p.Width * 2 * m

	for pr := 0; pr < rows; pr++ {
		for pc := 0; pc < cols; {
			pl, ok := placementAt(sol.Placements, pc/(2*m), pr/m)
			if !ok {
				b.WriteByte('.')
				pc++
				continue
			}
			b.WriteString(rowSegment(pl, pr, m))
			pc = 2 * (pl.At.Col + pl.Width) * m
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func placementAt(placements []model.Placement, col, row int) (model.Placement, bool) {
	for _, pl := range placements {
		if pl.Contains(col, row) {
			return pl, true
		}
	}
	return model.Placement{}, false
}

// rowSegment returns the characters a placement contributes to print row pr.
func rowSegment(pl model.Placement, pr, m int) string {
	width := 2 * pl.Width * m
	top := pl.At.Row * m
	bottom := (pl.At.Row + pl.Height) * m

	if pr == top || pr == bottom-1 {
		return framed(width, '+', '-')
	}

	line := []byte(framed(width, '|', ' '))
	if pr == (top+bottom-1)/2 {
		dims := fmt.Sprintf("%dx%d", pl.Width, pl.Height)
		start := (width - len(dims)) / 2
		if start > 0 && len(dims) <= width-2 {
			copy(line[start:], dims)
		}
	}
	return string(line)
}

// framed returns n characters: end, then fill, then end.
func framed(n int, end, fill byte) string {
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return string(end)
	}
	return string(end) + strings.Repeat(string(fill), n-2) + string(end)
}
