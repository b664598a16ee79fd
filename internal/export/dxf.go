package export

import (
	"fmt"

	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerBoard  = "BOARD"
	LayerBlocks = "BLOCKS"
	LayerLabels = "LABELS"
)

// ExportDXF writes the tiling as a DXF drawing with one drawing unit per
// cell. The board outline goes on LayerBoard, each placement's outline on
// LayerBlocks and its dimension text on LayerLabels. Row 0 is the top edge,
// so rows are flipped onto the DXF Y axis.
func ExportDXF(path string, p model.Puzzle, sol model.Solution) error {
	if len(sol.Placements) == 0 {
		return ErrNothingPlaced
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerBoard, color.White},
		{LayerBlocks, color.Cyan},
		{LayerLabels, color.Yellow},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("adding layer %s: %w", l.name, err)
		}
	}

	flip := func(row int) float64 { return float64(p.Height - row) }

	if err := d.ChangeLayer(LayerBoard); err != nil {
		return err
	}
	if err := drawRect(d, 0, flip(0), float64(p.Width), flip(p.Height)); err != nil {
		return err
	}

	for i, pl := range sol.Placements {
		if err := d.ChangeLayer(LayerBlocks); err != nil {
			return err
		}
		x1, y1 := float64(pl.At.Col), flip(pl.At.Row)
		x2, y2 := float64(pl.At.Col+pl.Width), flip(pl.At.Row+pl.Height)
		if err := drawRect(d, x1, y1, x2, y2); err != nil {
			return fmt.Errorf("placement %d: %w", i+1, err)
		}

		if err := d.ChangeLayer(LayerLabels); err != nil {
			return err
		}
		text := fmt.Sprintf("%dx%d", pl.Width, pl.Height)
		if _, err := d.Text(text, x1+0.1, y2+0.1, 0, 0.25); err != nil {
			return fmt.Errorf("placement %d label: %w", i+1, err)
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four lines on the current layer.
func drawRect(d *drawing.Drawing, x1, y1, x2, y2 float64) error {
	corners := [][2]float64{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
