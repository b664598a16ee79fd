// Package importer reads puzzles from disk. It understands the plain
// whitespace text format, TOML puzzle files, and CSV or Excel block lists
// with automatic delimiter detection and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Puzzle   model.Puzzle
	Errors   []string
	Warnings []string
}

// Err joins the collected error messages, or returns nil if there are none.
func (r ImportResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return errors.New(strings.Join(r.Errors, "; "))
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	Width    int
	Height   int
	Quantity int
}

// boardLabels mark the row that carries the target dimensions.
var boardLabels = map[string]bool{"board": true, "target": true}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "block", "block name", "description", "desc", "piece", "item"},
	"width":    {"width", "w", "columns", "cols", "x"},
	"height":   {"height", "h", "rows", "y"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only delimiters that split the first row into several columns count
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or a default positional
// mapping (Label, Width, Height, Quantity) and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Height: -1, Quantity: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "height":
					if mapping.Height == -1 {
						mapping.Height = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsedRow is one data row. Board rows carry the target dimensions.
type parsedRow struct {
	label    string
	width    int
	height   int
	quantity int
	board    bool
}

// parseRow extracts a block or board row using the given column mapping.
// Dimensions are taken as written; range checks belong to the solver.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (parsedRow, string) {
	out := parsedRow{label: getCell(row, mapping.Label), quantity: 1}
	out.board = boardLabels[strings.ToLower(out.label)]

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing width value", rowLabel)
	}
	width, err := strconv.Atoi(widthStr)
	if err != nil {
		return parsedRow{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr)
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing height value", rowLabel)
	}
	height, err := strconv.Atoi(heightStr)
	if err != nil {
		return parsedRow{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr)
	}

	out.width, out.height = width, height
	if out.board {
		return out, ""
	}

	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return parsedRow{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr)
		}
		if qty <= 0 {
			return parsedRow{}, fmt.Sprintf("%s: Quantity must be positive", rowLabel)
		}
		out.quantity = qty
	}

	return out, ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// puzzleName derives a display name from a file path.
func puzzleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ImportCSV imports a block list from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	result.Puzzle.Name = puzzleName(path)
	return result
}

// ImportCSVFromReader imports a block list from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports a block list from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	result = importFromRows(rows, "Row", nil)
	result.Puzzle.Name = puzzleName(path)
	return result
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and expands each block row by its quantity.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// A non-numeric width column means an unrecognized header
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	boardFound := false
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		parsed, errMsg := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		if parsed.board {
			if boardFound {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Duplicate board row, using the last one", rowLabel))
			}
			boardFound = true
			result.Puzzle.Width, result.Puzzle.Height = parsed.width, parsed.height
			continue
		}

		if parsed.quantity > model.MaxBlocks-len(result.Puzzle.Blocks) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Too many blocks (at most %d)", rowLabel, model.MaxBlocks))
			break
		}

		label := parsed.label
		for n := 0; n < parsed.quantity; n++ {
			if parsed.label == "" {
				label = fmt.Sprintf("Block %d", len(result.Puzzle.Blocks)+1)
			}
			result.Puzzle.Blocks = append(result.Puzzle.Blocks, model.Block{
				Label:  label,
				Width:  parsed.width,
				Height: parsed.height,
			})
		}
	}

	if !boardFound {
		result.Errors = append(result.Errors, "No board row found: add a row labelled 'board' with the target width and height")
	}
	if len(result.Puzzle.Blocks) == 0 {
		result.Errors = append(result.Errors, "No blocks found")
	}

	result.Puzzle = model.NewPuzzle(result.Puzzle.Name, result.Puzzle.Width, result.Puzzle.Height, result.Puzzle.Blocks...)
	return result
}
