package engine

import (
	"testing"

	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		puzzle model.Puzzle
		code   Code
	}{
		{
			name:   "valid",
			puzzle: model.NewPuzzle("ok", 4, 4, model.NewBlock(4, 2), model.NewBlock(2, 4)),
		},
		{
			name:   "zero width",
			puzzle: model.NewPuzzle("bad", 0, 4),
			code:   ErrCodeInvalidBoard,
		},
		{
			name:   "board too tall",
			puzzle: model.NewPuzzle("bad", 1, 100, model.NewBlock(1, 100)),
			code:   ErrCodeInvalidBoard,
		},
		{
			name:   "largest board accepted",
			puzzle: model.NewPuzzle("big", 99, 1, model.NewBlock(99, 1)),
		},
		{
			name:   "block longer than both sides",
			puzzle: model.NewPuzzle("bad", 3, 2, model.NewBlock(6, 1)),
			code:   ErrCodeInvalidBlock,
		},
		{
			name:   "block with zero side",
			puzzle: model.NewPuzzle("bad", 3, 2, model.NewBlock(0, 2), model.NewBlock(3, 2)),
			code:   ErrCodeInvalidBlock,
		},
		{
			name:   "area mismatch",
			puzzle: model.NewPuzzle("bad", 3, 3, model.NewBlock(2, 2), model.NewBlock(2, 2)),
			code:   ErrCodeAreaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.puzzle)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsCode(err, tt.code), "expected %s, got %v", tt.code, err)
			assert.True(t, IsPrecondition(err))
		})
	}
}

func TestValidate_BlockMayExceedShorterSide(t *testing.T) {
	// A 3x2 block on a 2x3 board only fits rotated, but is structurally valid
	assert.NoError(t, Validate(model.NewPuzzle("rot", 2, 3, model.NewBlock(3, 2))))
}
