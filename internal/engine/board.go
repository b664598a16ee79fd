package engine

import "github.com/piwi3910/BlockFit/internal/model"

// emptyCell marks a cell not covered by any placement.
const emptyCell = 0

// region is a committed rectangle, kept so Undo can verify stack discipline.
type region struct {
	w, h   int
	anchor model.Point
}

// Board is the target grid. Cells are stored row-major; each holds emptyCell
// or the non-zero tag of the placement covering it.
type Board struct {
	width    int
	height   int
	cells    []int
	occupied int
	stack    []region
}

// NewBoard allocates an all-empty board of the given size.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Occupied returns the number of covered cells.
func (b *Board) Occupied() int { return b.occupied }

// Full reports whether every cell is covered.
func (b *Board) Full() bool { return b.occupied == len(b.cells) }

// At returns the tag stored at (col, row), or emptyCell.
func (b *Board) At(col, row int) int {
	return b.cells[row*b.width+col]
}

// NextOpenCell scans rows top to bottom and, within a row, columns left to
// right, returning the first empty cell. ok is false when the board is full.
func (b *Board) NextOpenCell() (p model.Point, ok bool) {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row*b.width+col] == emptyCell {
				return model.Point{Col: col, Row: row}, true
			}
		}
	}
	return model.Point{}, false
}

// Fits reports whether a w×h rectangle anchored at anchor lies inside the
// board and covers only empty cells. It stops at the first violation.
func (b *Board) Fits(w, h int, anchor model.Point) bool {
	if w < 1 || h < 1 || anchor.Col < 0 || anchor.Row < 0 {
		return false
	}
	if anchor.Col+w > b.width || anchor.Row+h > b.height {
		return false
	}
	for row := anchor.Row; row < anchor.Row+h; row++ {
		base := row * b.width
		for col := anchor.Col; col < anchor.Col+w; col++ {
			if b.cells[base+col] != emptyCell {
				return false
			}
		}
	}
	return true
}

// Commit marks every cell of the rectangle with tag. The rectangle must fit.
func (b *Board) Commit(w, h int, anchor model.Point, tag int) {
	if tag == emptyCell {
		logicViolation("commit of %dx%d at %s with empty tag", w, h, anchor)
	}
	if !b.Fits(w, h, anchor) {
		logicViolation("commit of %dx%d at %s does not fit", w, h, anchor)
	}
	b.fill(w, h, anchor, tag)
	b.occupied += w * h
	b.stack = append(b.stack, region{w: w, h: h, anchor: anchor})
}

// Undo clears the rectangle. It must be the most recent commit still in place.
func (b *Board) Undo(w, h int, anchor model.Point) {
	if len(b.stack) == 0 {
		logicViolation("undo of %dx%d at %s with nothing committed", w, h, anchor)
	}
	top := b.stack[len(b.stack)-1]
	if top.w != w || top.h != h || top.anchor != anchor {
		logicViolation("undo of %dx%d at %s does not match last commit %dx%d at %s",
			w, h, anchor, top.w, top.h, top.anchor)
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.fill(w, h, anchor, emptyCell)
	b.occupied -= w * h
}

// Depth returns the number of commits currently in place.
func (b *Board) Depth() int { return len(b.stack) }

// Cells returns a copy of the row-major cell tags.
func (b *Board) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *Board) fill(w, h int, anchor model.Point, value int) {
	for row := anchor.Row; row < anchor.Row+h; row++ {
		base := row * b.width
		for col := anchor.Col; col < anchor.Col+w; col++ {
			b.cells[base+col] = value
		}
	}
}
