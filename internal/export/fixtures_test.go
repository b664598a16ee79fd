package export

import (
	"fmt"

	"github.com/piwi3910/BlockFit/internal/model"
)

// buildTestPuzzle returns a 4x4 board tiled by two labelled strips.
func buildTestPuzzle() (model.Puzzle, model.Solution) {
	p := model.NewPuzzle("strips", 4, 4,
		model.Block{Label: "Top", Width: 4, Height: 2},
		model.Block{Label: "Bottom", Width: 2, Height: 4},
	)
	sol := model.Solution{
		PuzzleID: p.ID,
		Outcome:  model.OutcomeSolved,
		Calls:    2,
		Placements: []model.Placement{
			{Block: 0, Width: 4, Height: 2, At: model.Point{Col: 0, Row: 0}},
			{Block: 1, Width: 4, Height: 2, At: model.Point{Col: 0, Row: 2}, Rotated: true},
		},
	}
	return p, sol
}

// buildUnitPuzzle returns an n x n board of unit cells, each placed in scan order.
func buildUnitPuzzle(n int) (model.Puzzle, model.Solution) {
	blocks := make([]model.Block, n*n)
	placements := make([]model.Placement, n*n)
	for i := range blocks {
		blocks[i] = model.Block{Label: fmt.Sprintf("Cell %d", i+1), Width: 1, Height: 1}
		placements[i] = model.Placement{Block: i, Width: 1, Height: 1, At: model.Point{Col: i % n, Row: i / n}}
	}
	p := model.NewPuzzle("units", n, n, blocks...)
	return p, model.Solution{PuzzleID: p.ID, Outcome: model.OutcomeSolved, Calls: n * n, Placements: placements}
}
