// Package engine implements the rectangle tiling search: the board and fit
// test, the block catalog, and the backtracking placement engine.
package engine

import (
	"context"
	"time"

	"github.com/piwi3910/BlockFit/internal/model"
)

// Solver runs the backtracking tiling search.
type Solver struct {
	Settings model.SolveSettings
	Reporter Reporter

	clock func() time.Time
}

func New(settings model.SolveSettings) *Solver {
	return &Solver{Settings: settings, Reporter: NopReporter{}}
}

// WithReporter sets the event sink and returns the solver.
func (s *Solver) WithReporter(r Reporter) *Solver {
	if r == nil {
		r = NopReporter{}
	}
	s.Reporter = r
	return s
}

// Solve searches for a tiling of the puzzle's board using every block once.
//
// An exhausted search is a normal outcome: the Solution carries
// OutcomeExhausted and the error is nil. A structural precondition failure
// returns OutcomeExhausted with zero calls and an error for which
// IsPrecondition is true; no placement is attempted. A tripped call budget,
// timeout or context cancellation returns OutcomeAborted with the calls made
// so far and an ErrCodeBudgetExceeded or ErrCodeCanceled error; the board is
// fully unwound first.
func (s *Solver) Solve(ctx context.Context, p model.Puzzle) (model.Solution, error) {
	clock := s.clock
	if clock == nil {
		clock = time.Now
	}
	start := clock()
	reporter := s.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	sol := model.Solution{PuzzleID: p.ID, Outcome: model.OutcomeExhausted}

	if err := Validate(p); err != nil {
		reporter.Finished(sol.Outcome, 0)
		sol.Elapsed = clock().Sub(start)
		return sol, err
	}

	catalog := NewCatalog(p.Blocks)
	if !s.Settings.DisableOrdering {
		sol.Ordered = catalog.Order(s.Settings.EffectiveSortThreshold())
	}

	run := &search{
		ctx:      ctx,
		board:    NewBoard(p.Width, p.Height),
		catalog:  catalog,
		reporter: reporter,
		maxCalls: s.Settings.MaxCalls,
		clock:    clock,
	}
	if s.Settings.Timeout > 0 {
		run.deadline = start.Add(s.Settings.Timeout)
	}

	solved := run.explore()
	sol.Calls = run.calls
	sol.Elapsed = clock().Sub(start)

	switch {
	case solved:
		sol.Outcome = model.OutcomeSolved
		sol.Placements = append([]model.Placement(nil), run.stack...)
	case run.err != nil:
		sol.Outcome = model.OutcomeAborted
	}
	reporter.Finished(sol.Outcome, sol.Calls)

	return sol, run.err
}

// search is the mutable state of one Solve call. It exclusively owns the
// board and catalog for the duration of the search.
type search struct {
	ctx      context.Context
	board    *Board
	catalog  *Catalog
	reporter Reporter
	maxCalls int
	deadline time.Time
	clock    func() time.Time

	calls int
	stack []model.Placement
	err   error
}

// explore fills the next open cell, trying every available block in catalog
// order, native orientation before swapped. It returns true once the board
// is full. A non-nil s.err means a limit tripped and the caller must unwind
// without trying further siblings.
func (s *search) explore() bool {
	open, ok := s.board.NextOpenCell()
	if !ok {
		return true
	}

	s.calls++
	if s.err = s.checkLimits(); s.err != nil {
		return false
	}

	for i, blk := range s.catalog.Available() {
		if s.try(i, blk.Width, blk.Height, open, false) {
			return true
		}
		if s.err != nil {
			return false
		}

		// The swapped orientation of a square is the same rectangle
		if blk.IsSquare() {
			continue
		}
		if s.try(i, blk.Height, blk.Width, open, true) {
			return true
		}
		if s.err != nil {
			return false
		}
	}
	return false
}

// try commits block i as a w×h rectangle at anchor and recurses. On failure
// the commit is undone and the block released before returning.
func (s *search) try(i, w, h int, anchor model.Point, rotated bool) bool {
	if !s.board.Fits(w, h, anchor) {
		return false
	}

	p := model.Placement{
		Block:   s.catalog.InputIndex(i),
		Width:   w,
		Height:  h,
		At:      anchor,
		Rotated: rotated,
	}

	s.board.Commit(w, h, anchor, s.calls)
	s.catalog.Consume(i)
	s.stack = append(s.stack, p)
	s.reporter.Placed(p)

	if s.explore() {
		return true
	}

	s.board.Undo(w, h, anchor)
	s.catalog.Release(i)
	s.stack = s.stack[:len(s.stack)-1]
	s.reporter.Removed(p)
	return false
}

// checkLimits evaluates the cooperative stop conditions once per call.
func (s *search) checkLimits() error {
	if err := s.ctx.Err(); err != nil {
		return WrapError(ErrCodeCanceled, err, "search stopped after %d calls", s.calls)
	}
	if s.maxCalls > 0 && s.calls > s.maxCalls {
		return NewError(ErrCodeBudgetExceeded, "call budget of %d exhausted", s.maxCalls)
	}
	if !s.deadline.IsZero() && s.clock().After(s.deadline) {
		return WrapError(ErrCodeBudgetExceeded, context.DeadlineExceeded, "search stopped after %d calls", s.calls)
	}
	return nil
}
