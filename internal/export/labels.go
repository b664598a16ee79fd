package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BlockFit/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each block label's QR code.
type LabelInfo struct {
	PuzzleID string `json:"puzzle"`
	Number   int    `json:"number"` // 1-based placement order
	Block    int    `json:"block"`  // index into the puzzle's blocks
	Label    string `json:"label"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	Rotated  bool   `json:"rotated"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// ExportLabels generates a PDF of QR-coded labels, one per placed block.
// Each label shows the block name, its placed size and anchor, with a QR
// code carrying the LabelInfo as JSON.
func ExportLabels(path string, p model.Puzzle, sol model.Solution) error {
	labels := CollectLabelInfos(p, sol)
	if len(labels) == 0 {
		return ErrNothingPlaced
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Label, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.PuzzleID, info.Number)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := fitText(info.Label, textW, pdf.GetStringWidth)
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d x %d", info.Width, info.Height), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("#%d @ (%d, %d)", info.Number, info.Col, info.Row), "", 1, "L", false, 0, "")

	if info.Rotated {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Rotated 90\xb0", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information for every placement, in placement order.
func CollectLabelInfos(p model.Puzzle, sol model.Solution) []LabelInfo {
	var labels []LabelInfo
	for i, pl := range sol.Placements {
		labels = append(labels, LabelInfo{
			PuzzleID: p.ID,
			Number:   i + 1,
			Block:    pl.Block,
			Label:    blockLabel(p, pl),
			Width:    pl.Width,
			Height:   pl.Height,
			Col:      pl.At.Col,
			Row:      pl.At.Row,
			Rotated:  pl.Rotated,
		})
	}
	return labels
}

// fitText shortens s by whole runes and appends "..." until it measures at
// most maxW.
func fitText(s string, maxW float64, measure func(string) float64) string {
	if measure(s) <= maxW {
		return s
	}
	for s != "" && measure(s+"...") > maxW {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s + "..."
}
