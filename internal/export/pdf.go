// Package export writes solver results to text, PDF, label sheet, DXF and
// Excel formats.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BlockFit/internal/model"
)

// ErrNothingPlaced is returned by the file exporters when the solution has no placements.
var ErrNothingPlaced = errors.New("no placed blocks to export")

// blockColor represents an RGB color for a placed block.
type blockColor struct {
	R, G, B int
}

// blockColors is the fill palette, cycled by placement order.
var blockColors = []blockColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func colorFor(i int) blockColor {
	return blockColors[i%len(blockColors)]
}

// blockLabel returns the name of the placed block, falling back to its number.
func blockLabel(p model.Puzzle, pl model.Placement) string {
	if pl.Block >= 0 && pl.Block < len(p.Blocks) && p.Blocks[pl.Block].Label != "" {
		return p.Blocks[pl.Block].Label
	}
	return fmt.Sprintf("Block %d", pl.Block+1)
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	tableRowH    = 6.0
)

// ExportPDF generates a PDF document with the board layout on the first page
// followed by a summary with the run statistics and a placement table.
func ExportPDF(path string, p model.Puzzle, sol model.Solution) error {
	if len(sol.Placements) == 0 {
		return ErrNothingPlaced
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, p, sol)

	pdf.AddPage()
	renderSummaryPage(pdf, p, sol)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the board and every placement on the current page.
func renderLayoutPage(pdf *fpdf.Fpdf, p model.Puzzle, sol model.Solution) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: %d x %d board", displayName(p), p.Width, p.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Blocks: %d | Placed: %d | Coverage: %.1f%% | Calls: %d",
		len(p.Blocks), len(sol.Placements), sol.Coverage(p), sol.Calls)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/float64(p.Width), drawHeight/float64(p.Height))
	canvasW := float64(p.Width) * scale
	canvasH := float64(p.Height) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Board background and cell grid
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")
	drawCellGrid(pdf, p, scale, offsetX, offsetY, canvasW, canvasH)

	for i, pl := range sol.Placements {
		col := colorFor(i)
		pw := float64(pl.Width) * scale
		ph := float64(pl.Height) * scale
		px := offsetX + float64(pl.At.Col)*scale
		py := offsetY + float64(pl.At.Row)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := blockLabel(p, pl)
			dims := fmt.Sprintf("%dx%d", pl.Width, pl.Height)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, p, offsetX, offsetY, canvasW, canvasH)
	drawBlockLegend(pdf, p, sol, offsetY+canvasH+5)
}

// drawCellGrid draws faint lines between board cells.
func drawCellGrid(pdf *fpdf.Fpdf, p model.Puzzle, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	for c := 1; c < p.Width; c++ {
		x := offsetX + float64(c)*scale
		pdf.Line(x, offsetY, x, offsetY+canvasH)
	}
	for r := 1; r < p.Height; r++ {
		y := offsetY + float64(r)*scale
		pdf.Line(offsetX, y, offsetX+canvasW, y)
	}
}

// drawDimensionAnnotations adds the board width and height outside the board rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, p model.Puzzle, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d cells", p.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d cells", p.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawBlockLegend renders a compact legend of placed blocks at the bottom of the layout page.
func drawBlockLegend(pdf *fpdf.Fpdf, p model.Puzzle, sol model.Solution, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Blocks placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, pl := range sol.Placements {
		col := colorFor(i)
		label := fmt.Sprintf("%s (%dx%d)", blockLabel(p, pl), pl.Width, pl.Height)
		if pl.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		// The legend stops at the page edge; the summary table lists everything
		if startY > pageHeight-marginBottom {
			break
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the run statistics and the placement table,
// continuing the table on further pages as needed.
func renderSummaryPage(pdf *fpdf.Fpdf, p model.Puzzle, sol model.Solution) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Tiling Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Run Statistics", "", 0, "L", false, 0, "")
	y += 9

	ordering := "input order"
	if sol.Ordered {
		ordering = "descending area"
	}
	summaryItems := []struct {
		label string
		value string
	}{
		{"Puzzle ID", p.ID},
		{"Board", fmt.Sprintf("%d x %d (%d cells)", p.Width, p.Height, p.BoardArea())},
		{"Outcome", sol.Outcome.String()},
		{"Recursive Calls", fmt.Sprintf("%d", sol.Calls)},
		{"Block Ordering", ordering},
		{"Blocks Placed", fmt.Sprintf("%d of %d", len(sol.Placements), len(p.Blocks))},
		{"Coverage", fmt.Sprintf("%.1f%%", sol.Coverage(p))},
		{"Elapsed", sol.Elapsed.String()},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Placements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 80, 40, 40, 40}
	headers := []string{"#", "Block", "Size", "Anchor", "Rotated"}
	y = drawTableHeader(pdf, colWidths, headers, y)

	pdf.SetFont("Helvetica", "", 9)
	for i, pl := range sol.Placements {
		if y+tableRowH > pageHeight-marginBottom {
			pdf.AddPage()
			y = drawTableHeader(pdf, colWidths, headers, marginTop)
			pdf.SetFont("Helvetica", "", 9)
		}

		rotated := "no"
		if pl.Rotated {
			rotated = "yes"
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			blockLabel(p, pl),
			fmt.Sprintf("%d x %d", pl.Width, pl.Height),
			pl.At.String(),
			rotated,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], tableRowH, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += tableRowH
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by BlockFit - Rectangle Tiling Solver", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func drawTableHeader(pdf *fpdf.Fpdf, colWidths []float64, headers []string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], tableRowH, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	return y + tableRowH
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

func displayName(p model.Puzzle) string {
	if p.Name != "" {
		return p.Name
	}
	return "Puzzle " + p.ID
}
