package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxBoardSize is the largest accepted value for either board dimension.
const MaxBoardSize = 99

// MaxBlocks bounds the block count of any puzzle: every block covers at
// least one cell of the largest board.
const MaxBlocks = MaxBoardSize * MaxBoardSize

// Point is a cell coordinate on the board. Col grows to the right, Row grows down.
type Point struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// Block is one rectangular piece to be placed, in its input orientation.
type Block struct {
	Label  string `json:"label,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func NewBlock(w, h int) Block {
	return Block{Width: w, Height: h}
}

// Area returns the number of cells the block covers.
func (b Block) Area() int {
	return b.Width * b.Height
}

// IsSquare reports whether both orientations of the block are identical.
func (b Block) IsSquare() bool {
	return b.Width == b.Height
}

// Rotated returns the block with width and height swapped.
func (b Block) Rotated() Block {
	return Block{Label: b.Label, Width: b.Height, Height: b.Width}
}

// MinSide returns the shorter of the two sides.
func (b Block) MinSide() int {
	if b.Width < b.Height {
		return b.Width
	}
	return b.Height
}

func (b Block) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Placement records a block laid on the board. Width and Height are the
// effective dimensions after the orientation choice.
type Placement struct {
	Block   int   `json:"block"` // index into Puzzle.Blocks
	Width   int   `json:"width"`
	Height  int   `json:"height"`
	At      Point `json:"at"` // top-left anchor cell
	Rotated bool  `json:"rotated"`
}

// Area returns the number of cells covered by the placement.
func (p Placement) Area() int {
	return p.Width * p.Height
}

// Contains reports whether the cell (col, row) lies inside the placement.
func (p Placement) Contains(col, row int) bool {
	return p.At.Col <= col && col < p.At.Col+p.Width &&
		p.At.Row <= row && row < p.At.Row+p.Height
}

// Overlaps reports whether two placements share at least one cell.
func (p Placement) Overlaps(o Placement) bool {
	return p.At.Col < o.At.Col+o.Width && o.At.Col < p.At.Col+p.Width &&
		p.At.Row < o.At.Row+o.Height && o.At.Row < p.At.Row+p.Height
}

// Same reports whether both placements describe the same rectangle on the board.
func (p Placement) Same(o Placement) bool {
	return p.Width == o.Width && p.Height == o.Height && p.At == o.At
}

func (p Placement) String() string {
	return fmt.Sprintf("rectangle %d x %d at %s", p.Width, p.Height, p.At)
}

// Puzzle is a target board plus the blocks that must tile it.
type Puzzle struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Blocks []Block `json:"blocks"`
}

func NewPuzzle(name string, w, h int, blocks ...Block) Puzzle {
	return Puzzle{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  w,
		Height: h,
		Blocks: blocks,
	}
}

// BoardArea returns width × height of the target.
func (p Puzzle) BoardArea() int {
	return p.Width * p.Height
}

// BlockArea returns the summed area of every block.
func (p Puzzle) BlockArea() int {
	total := 0
	for _, b := range p.Blocks {
		total += b.Area()
	}
	return total
}

// MaxDimension returns the larger of the two board dimensions.
func (p Puzzle) MaxDimension() int {
	if p.Width > p.Height {
		return p.Width
	}
	return p.Height
}

// Outcome is the terminal state of a search.
type Outcome int

const (
	OutcomeExhausted Outcome = iota // every branch failed
	OutcomeSolved                   // the board is fully tiled
	OutcomeAborted                  // a call budget, timeout or cancellation stopped the search
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "Solved"
	case OutcomeAborted:
		return "Aborted"
	default:
		return "Exhausted"
	}
}

// Solution is the result of one solver run.
type Solution struct {
	PuzzleID   string        `json:"puzzle_id"`
	Outcome    Outcome       `json:"outcome"`
	Calls      int           `json:"calls"`
	Placements []Placement   `json:"placements"` // commit order; empty unless solved
	Ordered    bool          `json:"ordered"`    // blocks were sorted by descending area
	Elapsed    time.Duration `json:"elapsed"`
}

// Solved reports whether the board was fully tiled.
func (s Solution) Solved() bool {
	return s.Outcome == OutcomeSolved
}

// CoveredArea returns the number of cells covered by the placements.
func (s Solution) CoveredArea() int {
	total := 0
	for _, p := range s.Placements {
		total += p.Area()
	}
	return total
}

// Coverage returns the covered share of the board as a percentage.
func (s Solution) Coverage(p Puzzle) float64 {
	if p.BoardArea() == 0 {
		return 0
	}
	return float64(s.CoveredArea()) / float64(p.BoardArea()) * 100
}

// Grid returns a height × width matrix holding, for each cell, the 1-based
// number of the placement covering it, or 0 for an uncovered cell.
func (s Solution) Grid(p Puzzle) [][]int {
	grid := make([][]int, p.Height)
	for row := range grid {
		grid[row] = make([]int, p.Width)
	}
	for n, pl := range s.Placements {
		for row := pl.At.Row; row < pl.At.Row+pl.Height && row < p.Height; row++ {
			for col := pl.At.Col; col < pl.At.Col+pl.Width && col < p.Width; col++ {
				grid[row][col] = n + 1
			}
		}
	}
	return grid
}

// DefaultSortThreshold is the block count above which the catalog is sorted
// by descending area before searching.
const DefaultSortThreshold = 8

// SolveSettings holds search configuration.
type SolveSettings struct {
	SortThreshold   int           `json:"sort_threshold"`   // 0 = DefaultSortThreshold, negative = always sort
	DisableOrdering bool          `json:"disable_ordering"` // keep input order regardless of count
	MaxCalls        int           `json:"max_calls"`        // 0 = unlimited
	Timeout         time.Duration `json:"timeout"`          // 0 = no deadline
}

func DefaultSettings() SolveSettings {
	return SolveSettings{
		SortThreshold: DefaultSortThreshold,
	}
}

// EffectiveSortThreshold resolves the zero value to the default.
func (s SolveSettings) EffectiveSortThreshold() int {
	if s.SortThreshold == 0 {
		return DefaultSortThreshold
	}
	return s.SortThreshold
}
