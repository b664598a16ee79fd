package engine

import "github.com/piwi3910/BlockFit/internal/model"

// Validate checks the structural preconditions of a puzzle: board
// dimensions within [1, MaxBoardSize], every block side within
// [1, max(width, height)], and block areas summing to the board area.
// The first violation found is returned.
func Validate(p model.Puzzle) error {
	if p.Width < 1 || p.Width > model.MaxBoardSize || p.Height < 1 || p.Height > model.MaxBoardSize {
		return NewError(ErrCodeInvalidBoard, "bad target rectangle size %d x %d (each side must be 1..%d)",
			p.Width, p.Height, model.MaxBoardSize)
	}

	maxSide := p.MaxDimension()
	for i, b := range p.Blocks {
		if b.Width < 1 || b.Width > maxSide || b.Height < 1 || b.Height > maxSide {
			return NewError(ErrCodeInvalidBlock, "bad rectangle size %d x %d for block %d (each side must be 1..%d)",
				b.Width, b.Height, i+1, maxSide)
		}
	}

	if sum, target := p.BlockArea(), p.BoardArea(); sum != target {
		return NewError(ErrCodeAreaMismatch, "total size of all blocks (%d) is not equal to size of target (%d)",
			sum, target)
	}
	return nil
}
