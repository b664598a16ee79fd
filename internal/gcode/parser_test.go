package gcode

import (
	"math"
	"testing"
)

func TestParse_EmptyAndComments(t *testing.T) {
	if moves := Parse(""); len(moves) != 0 {
		t.Errorf("expected 0 moves for empty input, got %d", len(moves))
	}

	code := `; header
( parenthetical comment)
(unterminated comment
`
	if moves := Parse(code); len(moves) != 0 {
		t.Errorf("expected 0 moves for comments-only input, got %d", len(moves))
	}
}

func TestParse_NonMovementLines(t *testing.T) {
	code := `G90
G21
M3 S18000
G0 X0.000 Y0.000
G0 Z5.000
G00 X1 Y1
M5
`
	if moves := Parse(code); len(moves) != 3 {
		t.Errorf("expected 3 moves (only G0 lines), got %d", len(moves))
	}
}

func TestParse_StateAndFeedTracking(t *testing.T) {
	code := `G0 X10.000 Y20.000
G0 Z5.000
G1 Z-3.000 F300 ; plunge
G1 X100.000 Y20.000 F1200
G1 X100.000 Y-20.000
G0 Z5.000
`
	moves := Parse(code)
	if len(moves) != 6 {
		t.Fatalf("expected 6 moves, got %d", len(moves))
	}

	want := []MoveType{MoveRapid, MoveRetract, MovePlunge, MoveFeed, MoveFeed, MoveRetract}
	for i, m := range moves {
		if m.Type != want[i] {
			t.Errorf("move %d: expected type %d, got %d", i, want[i], m.Type)
		}
	}

	if moves[3].FromX != 10 || moves[3].ToX != 100 {
		t.Errorf("move 3: expected X from 10 to 100, got %.3f to %.3f", moves[3].FromX, moves[3].ToX)
	}
	if moves[4].ToY != -20 {
		t.Errorf("move 4: expected negative Y -20, got %.3f", moves[4].ToY)
	}
	if moves[4].FeedRate != 1200 {
		t.Errorf("expected sticky feed rate 1200, got %.1f", moves[4].FeedRate)
	}
}

func TestClassifyMove(t *testing.T) {
	tests := []struct {
		name    string
		isRapid bool
		fromZ   float64
		toZ     float64
		fromX   float64
		toX     float64
		want    MoveType
	}{
		{"rapid XY", true, 5, 5, 0, 10, MoveRapid},
		{"rapid retract", true, -6, 5, 10, 10, MoveRetract},
		{"feed XY", false, -6, -6, 0, 100, MoveFeed},
		{"plunge", false, 5, -6, 10, 10, MovePlunge},
		{"retract feed", false, -6, 0, 10, 10, MoveRetract},
		{"feed with slight Z", false, -6, -6.0001, 0, 100, MoveFeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyMove(tt.isRapid, tt.fromZ, tt.toZ, tt.fromX, 0, tt.toX, 0)
			if got != tt.want {
				t.Errorf("classifyMove() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCutLength_OnlyCountsFeedBelowSurface(t *testing.T) {
	code := `G0 X0 Y0
G1 X30 Y40 F1000
G1 Z-2 F300
G1 X30 Y0
G0 Z5
G0 X0 Y0
`
	got := CutLength(Parse(code))
	if math.Abs(got-40) > 1e-9 {
		t.Errorf("expected cut length 40, got %.3f", got)
	}
}

func TestSummarize(t *testing.T) {
	code := `G0 X0 Y0
G0 Z5
G1 Z-2 F300
G1 X30 Y0 F1000
G1 X30 Y40
G0 Z5
`
	got := Summarize(Parse(code))

	if got.Moves != 6 || got.Rapids != 1 || got.Plunges != 1 || got.Retracts != 2 {
		t.Errorf("unexpected counts: %+v", got)
	}
	if math.Abs(got.CutLength-70) > 1e-9 {
		t.Errorf("expected cut length 70, got %.3f", got.CutLength)
	}
}
