package gcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MoveType represents the type of CNC toolpath movement.
type MoveType int

const (
	MoveRapid   MoveType = iota // G0: rapid positioning (no cutting)
	MoveFeed                    // G1: linear feed (cutting move in XY plane)
	MovePlunge                  // G1 with Z decreasing: plunging into material
	MoveRetract                 // G0/G1 with Z increasing: retracting from material
)

// Move is a single parsed movement from G-code.
type Move struct {
	Type     MoveType
	FromX    float64
	FromY    float64
	FromZ    float64
	ToX      float64
	ToY      float64
	ToZ      float64
	FeedRate float64
}

var coordRe = regexp.MustCompile(`([XYZF])(-?\d+\.?\d*)`)

// Parse parses G-code into structured moves. It tracks absolute position
// state and classifies each G0/G1 command by its movement characteristics.
func Parse(code string) []Move {
	var moves []Move

	curX, curY, curZ := 0.0, 0.0, 0.0
	curFeed := 0.0

	for _, line := range strings.Split(code, "\n") {
		line = stripComment(strings.TrimSpace(line))
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		isRapid := isCommand(upper, "G0", "G00")
		isFeed := isCommand(upper, "G1", "G01")
		if !isRapid && !isFeed {
			continue
		}

		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		for _, m := range coordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				newX = val
			case "Y":
				newY = val
			case "Z":
				newZ = val
			case "F":
				newFeed = val
			}
		}

		moves = append(moves, Move{
			Type:     classifyMove(isRapid, curZ, newZ, curX, curY, newX, newY),
			FromX:    curX,
			FromY:    curY,
			FromZ:    curZ,
			ToX:      newX,
			ToY:      newY,
			ToZ:      newZ,
			FeedRate: newFeed,
		})

		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}

	return moves
}

// stripComment removes semicolon and parenthesized comments.
func stripComment(line string) string {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, "("); idx >= 0 {
		if end := strings.Index(line, ")"); end > idx {
			line = line[:idx] + line[end+1:]
		} else {
			line = line[:idx]
		}
	}
	return strings.TrimSpace(line)
}

func isCommand(line string, words ...string) bool {
	for _, w := range words {
		if line == w || strings.HasPrefix(line, w+" ") {
			return true
		}
	}
	return false
}

// classifyMove determines the MoveType based on movement characteristics.
func classifyMove(isRapid bool, fromZ, toZ, fromX, fromY, toX, toY float64) MoveType {
	zDelta := toZ - fromZ
	hasXY := fromX != toX || fromY != toY

	switch {
	case isRapid:
		if zDelta > 0 {
			return MoveRetract
		}
		return MoveRapid
	case zDelta < -0.001 && !hasXY:
		return MovePlunge
	case zDelta > 0.001 && !hasXY:
		return MoveRetract
	default:
		return MoveFeed
	}
}

// CutLength sums the XY distance of feed moves made below the surface.
func CutLength(moves []Move) float64 {
	total := 0.0
	for _, m := range moves {
		if m.Type == MoveFeed && m.ToZ < 0 {
			total += math.Hypot(m.ToX-m.FromX, m.ToY-m.FromY)
		}
	}
	return total
}

// Summary counts the moves of a program by type.
type Summary struct {
	Moves     int
	Rapids    int
	Plunges   int
	Retracts  int
	CutLength float64 // mm of feed below the surface
}

// Summarize tallies parsed moves.
func Summarize(moves []Move) Summary {
	s := Summary{Moves: len(moves), CutLength: CutLength(moves)}
	for _, m := range moves {
		switch m.Type {
		case MoveRapid:
			s.Rapids++
		case MovePlunge:
			s.Plunges++
		case MoveRetract:
			s.Retracts++
		}
	}
	return s
}
