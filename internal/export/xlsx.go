package export

import (
	"fmt"

	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetGrid       = "Grid"
	SheetPlacements = "Placements"
)

// ExportExcel writes a workbook with two sheets. Grid mirrors the board: each
// cell holds the 1-based number of the placement covering it and is filled
// with that placement's color. Placements lists every placement in order.
func ExportExcel(path string, p model.Puzzle, sol model.Solution) error {
	if len(sol.Placements) == 0 {
		return ErrNothingPlaced
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetGrid); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetPlacements); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := writeGrid(f, p, sol); err != nil {
		return err
	}
	if err := writePlacements(f, p, sol); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeGrid(f *excelize.File, p model.Puzzle, sol model.Solution) error {
	styles := make([]int, len(blockColors))
	for i, c := range blockColors {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("creating style: %w", err)
		}
		styles[i] = id
	}

	for r, row := range sol.Grid(p) {
		for c, n := range row {
			if n == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetGrid, cell, n); err != nil {
				return err
			}
			if err := f.SetCellStyle(SheetGrid, cell, cell, styles[(n-1)%len(styles)]); err != nil {
				return err
			}
		}
	}

	last, err := excelize.ColumnNumberToName(max(p.Width, 1))
	if err != nil {
		return err
	}
	return f.SetColWidth(SheetGrid, "A", last, 4)
}

func writePlacements(f *excelize.File, p model.Puzzle, sol model.Solution) error {
	headers := []interface{}{"#", "Block", "Label", "Width", "Height", "Col", "Row", "Rotated"}
	if err := f.SetSheetRow(SheetPlacements, "A1", &headers); err != nil {
		return err
	}

	for i, pl := range sol.Placements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i + 1, pl.Block + 1, blockLabel(p, pl), pl.Width, pl.Height, pl.At.Col, pl.At.Row, pl.Rotated}
		if err := f.SetSheetRow(SheetPlacements, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetPlacements, "C", "C", 20)
}
