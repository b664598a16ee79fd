// Package gcode turns a solved layout into a milling program that cuts the
// placed blocks out of a physical board, and parses such programs back into
// toolpath moves.
package gcode

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/piwi3910/BlockFit/internal/model"
)

// ErrNothingPlaced is returned when the solution has no placements to cut.
var ErrNothingPlaced = errors.New("gcode: solution has no placements")

// Segment is a straight cut line in machine coordinates (mm, Y up).
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Length returns the length of the segment in mm.
func (s Segment) Length() float64 {
	return math.Hypot(s.X1-s.X0, s.Y1-s.Y0)
}

// Generator produces G-code from a solved layout.
type Generator struct {
	Settings model.CutSettings
	profile  model.ControllerProfile
}

func New(settings model.CutSettings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  model.GetControllerProfile(settings.Controller),
	}
}

// Generate returns the program for one board. Interior cuts separate the
// pieces first; the board outline is cut last, with holding tabs on its
// final pass when TabsPerSide is set.
func (g *Generator) Generate(p model.Puzzle, sol model.Solution) (string, error) {
	if len(sol.Placements) == 0 {
		return "", ErrNothingPlaced
	}
	if err := g.validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	cuts := InteriorCuts(p, sol, g.Settings.CellSize)

	g.writeHeader(&b, p, sol, len(cuts))
	for i, seg := range cuts {
		g.writeSegment(&b, seg, i+1)
	}
	g.writeOutline(&b, p)
	g.writeFooter(&b)

	return b.String(), nil
}

// WriteFile generates the program and writes it to path.
func (g *Generator) WriteFile(path string, p model.Puzzle, sol model.Solution) (Summary, error) {
	code, err := g.Generate(p, sol)
	if err != nil {
		return Summary{}, err
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return Summary{}, err
	}
	return Summarize(Parse(code)), nil
}

func (g *Generator) validate() error {
	s := g.Settings
	switch {
	case s.CellSize <= 0:
		return fmt.Errorf("gcode: cell size must be positive, got %.2f", s.CellSize)
	case s.CutDepth <= 0 || s.PassDepth <= 0:
		return fmt.Errorf("gcode: cut depth and pass depth must be positive, got %.2f and %.2f", s.CutDepth, s.PassDepth)
	case s.ToolDiameter < 0:
		return fmt.Errorf("gcode: tool diameter must not be negative, got %.2f", s.ToolDiameter)
	}
	return nil
}

// InteriorCuts returns every line between two neighbouring pieces exactly
// once: the right and bottom edge of each placement that is not on the board
// boundary. Rows grow down on the board and Y grows up on the machine.
func InteriorCuts(p model.Puzzle, sol model.Solution, cellSize float64) []Segment {
	var cuts []Segment
	top := float64(p.Height) * cellSize

	for _, pl := range sol.Placements {
		left := float64(pl.At.Col) * cellSize
		right := float64(pl.At.Col+pl.Width) * cellSize
		upper := top - float64(pl.At.Row)*cellSize
		lower := top - float64(pl.At.Row+pl.Height)*cellSize

		if pl.At.Col+pl.Width < p.Width {
			cuts = append(cuts, Segment{X0: right, Y0: upper, X1: right, Y1: lower})
		}
		if pl.At.Row+pl.Height < p.Height {
			cuts = append(cuts, Segment{X0: left, Y0: lower, X1: right, Y1: lower})
		}
	}
	return cuts
}

func (g *Generator) passes() int {
	return int(math.Ceil(g.Settings.CutDepth / g.Settings.PassDepth))
}

func (g *Generator) passDepth(pass int) float64 {
	return math.Min(float64(pass)*g.Settings.PassDepth, g.Settings.CutDepth)
}

func (g *Generator) writeHeader(b *strings.Builder, p model.Puzzle, sol model.Solution, cuts int) {
	s := g.Settings

	b.WriteString(g.comment(fmt.Sprintf("BlockFit G-code - %s", sanitize(p.Name))))
	b.WriteString(g.comment(fmt.Sprintf("Board: %d x %d cells, %.1f x %.1f mm",
		p.Width, p.Height, float64(p.Width)*s.CellSize, float64(p.Height)*s.CellSize)))
	b.WriteString(g.comment(fmt.Sprintf("Pieces: %d, interior cuts: %d", len(sol.Placements), cuts)))
	b.WriteString(g.comment(fmt.Sprintf("Tool: %.1fmm, Feed: %.0f mm/min, Plunge: %.0f mm/min",
		s.ToolDiameter, s.FeedRate, s.PlungeRate)))
	b.WriteString(g.comment(fmt.Sprintf("Depth: %.1fmm in %.1fmm passes", s.CutDepth, s.PassDepth)))
	b.WriteString(g.comment(fmt.Sprintf("Controller: %s", g.profile.Name)))
	b.WriteString("\n")

	for _, code := range g.profile.StartCode {
		b.WriteString(code + "\n")
	}
	if g.profile.SpindleStart != "" {
		b.WriteString(fmt.Sprintf(g.profile.SpindleStart+"\n", s.SpindleSpeed))
	}

	b.WriteString(fmt.Sprintf("%s Z%s\n", g.profile.RapidMove, g.format(s.SafeZ)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove, g.format(0), g.format(0)))
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	b.WriteString(g.comment("=== Job complete ==="))
	for _, code := range g.profile.EndCode {
		b.WriteString(strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ)) + "\n")
	}
	if g.profile.SpindleStop != "" {
		b.WriteString(g.profile.SpindleStop + "\n")
	}
}

// writeSegment cuts one line in passes, reversing direction on every pass so
// the tool stays in the groove between passes.
func (g *Generator) writeSegment(b *strings.Builder, seg Segment, n int) {
	p := g.profile
	b.WriteString(g.comment(fmt.Sprintf("--- Cut %d: %.1fmm ---", n, seg.Length())))

	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(seg.X0), g.format(seg.Y0)))
	for pass := 1; pass <= g.passes(); pass++ {
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", p.FeedMove, g.format(-g.passDepth(pass)), g.format(g.Settings.PlungeRate)))
		x, y := seg.X1, seg.Y1
		if pass%2 == 0 {
			x, y = seg.X0, seg.Y0
		}
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove, g.format(x), g.format(y), g.format(g.Settings.FeedRate)))
	}
	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString("\n")
}

// writeOutline cuts around the board with the tool offset outside the edge,
// so the outer pieces keep their full size.
func (g *Generator) writeOutline(b *strings.Builder, p model.Puzzle) {
	toolR := g.Settings.ToolDiameter / 2.0
	x0 := -toolR
	y0 := -toolR
	x1 := float64(p.Width)*g.Settings.CellSize + toolR
	y1 := float64(p.Height)*g.Settings.CellSize + toolR

	b.WriteString(g.comment("--- Board outline ---"))

	tabs := g.calculateTabs(x1-x0, y1-y0)
	numPasses := g.passes()
	for pass := 1; pass <= numPasses; pass++ {
		depth := g.passDepth(pass)
		b.WriteString(g.comment(fmt.Sprintf("Pass %d/%d, depth=%.2fmm", pass, numPasses, depth)))

		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove, g.format(x0), g.format(y0)))
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", g.profile.FeedMove, g.format(-depth), g.format(g.Settings.PlungeRate)))

		if pass == numPasses && len(tabs) > 0 {
			g.writePerimeterWithTabs(b, x0, y0, x1, y1, depth, tabs)
		} else {
			g.writePerimeter(b, x0, y0, x1, y1)
		}

		b.WriteString(fmt.Sprintf("%s Z%s\n", g.profile.RapidMove, g.format(g.Settings.SafeZ)))
	}
	b.WriteString("\n")
}

func (g *Generator) writePerimeter(b *strings.Builder, x0, y0, x1, y1 float64) {
	p := g.profile
	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove, g.format(x1), g.format(y0), g.format(g.Settings.FeedRate)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.FeedMove, g.format(x1), g.format(y1)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.FeedMove, g.format(x0), g.format(y1)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.FeedMove, g.format(x0), g.format(y0)))
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	return fmt.Sprintf("%.*f", g.profile.DecimalPlaces, v)
}

// tab is a holding tab position along one side of the outline.
type tab struct {
	side     int     // 0=bottom, 1=right, 2=top, 3=left
	startPos float64 // distance of the tab centre along that side
}

func (g *Generator) calculateTabs(width, height float64) []tab {
	if g.Settings.TabsPerSide <= 0 || g.Settings.TabWidth <= 0 {
		return nil
	}

	var tabs []tab
	for side := 0; side < 4; side++ {
		length := width
		if side == 1 || side == 3 {
			length = height
		}
		spacing := length / float64(g.Settings.TabsPerSide+1)
		for t := 1; t <= g.Settings.TabsPerSide; t++ {
			tabs = append(tabs, tab{side: side, startPos: spacing * float64(t)})
		}
	}
	return tabs
}

func (g *Generator) writePerimeterWithTabs(b *strings.Builder, x0, y0, x1, y1, depth float64, tabs []tab) {
	tabDepth := math.Max(depth-g.Settings.TabHeight, 0)

	g.writeSideWithTabs(b, x0, y0, x1, y0, depth, tabDepth, tabsForSide(tabs, 0))
	g.writeSideWithTabs(b, x1, y0, x1, y1, depth, tabDepth, tabsForSide(tabs, 1))
	g.writeSideWithTabs(b, x1, y1, x0, y1, depth, tabDepth, tabsForSide(tabs, 2))
	g.writeSideWithTabs(b, x0, y1, x0, y0, depth, tabDepth, tabsForSide(tabs, 3))
}

func tabsForSide(tabs []tab, side int) []tab {
	var result []tab
	for _, t := range tabs {
		if t.side == side {
			result = append(result, t)
		}
	}
	return result
}

func (g *Generator) writeSideWithTabs(b *strings.Builder, x0, y0, x1, y1, cutDepth, tabDepth float64, tabs []tab) {
	feed := g.profile.FeedMove
	if len(tabs) == 0 {
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", feed, g.format(x1), g.format(y1), g.format(g.Settings.FeedRate)))
		return
	}

	length := math.Hypot(x1-x0, y1-y0)
	if length < 0.001 {
		return
	}
	nx := (x1 - x0) / length
	ny := (y1 - y0) / length
	tw := g.Settings.TabWidth

	cursor := 0.0
	for _, t := range tabs {
		tabStart := t.startPos - tw/2
		tabEnd := t.startPos + tw/2

		if tabStart > cursor {
			b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", feed,
				g.format(x0+nx*tabStart), g.format(y0+ny*tabStart), g.format(g.Settings.FeedRate)))
		}
		b.WriteString(fmt.Sprintf("%s Z%s\n", feed, g.format(-tabDepth)))
		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", feed, g.format(x0+nx*tabEnd), g.format(y0+ny*tabEnd)))
		b.WriteString(fmt.Sprintf("%s Z%s\n", feed, g.format(-cutDepth)))

		cursor = tabEnd
	}

	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", feed, g.format(x1), g.format(y1), g.format(g.Settings.FeedRate)))
}

// sanitize keeps comment text valid for controllers with parenthesized comments.
func sanitize(s string) string {
	if s == "" {
		return "unnamed"
	}
	return strings.NewReplacer("(", "[", ")", "]", "\n", " ").Replace(s)
}
