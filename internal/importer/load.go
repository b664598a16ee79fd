package importer

import (
	"path/filepath"
	"strings"
)

// Load imports a puzzle, choosing the reader by file extension. Anything
// that is not TOML, CSV or Excel is read as the plain text format.
func Load(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ImportTOML(path)
	case ".csv", ".tsv":
		return ImportCSV(path)
	case ".xlsx", ".xls":
		return ImportExcel(path)
	default:
		return ImportText(path)
	}
}
