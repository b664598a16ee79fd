package importer

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/BlockFit/internal/model"
)

// puzzleFile is the TOML layout of a puzzle:
//
//	name = "strips"
//	width = 4
//	height = 4
//
//	[[blocks]]
//	width = 4
//	height = 2
//	quantity = 2
type puzzleFile struct {
	Name   string      `toml:"name"`
	Width  int         `toml:"width"`
	Height int         `toml:"height"`
	Blocks []blockLine `toml:"blocks"`
}

type blockLine struct {
	Label    string `toml:"label"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Quantity int    `toml:"quantity"`
}

// ImportTOML reads a TOML puzzle file. A block without a quantity is used once.
func ImportTOML(path string) ImportResult {
	result := ImportResult{}

	var file puzzleFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read TOML: %v", err))
		return result
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("Ignored unknown keys: %s", strings.Join(keys, ", ")))
	}

	if !meta.IsDefined("width") || !meta.IsDefined("height") {
		result.Errors = append(result.Errors, "Board width and height are required")
	}

	var blocks []model.Block
	for i, line := range file.Blocks {
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Block %d: Quantity must be positive", i+1))
			continue
		}
		if qty > model.MaxBlocks-len(blocks) {
			result.Errors = append(result.Errors, fmt.Sprintf("Block %d: Too many blocks (at most %d)", i+1, model.MaxBlocks))
			break
		}
		for n := 0; n < qty; n++ {
			blocks = append(blocks, model.Block{Label: line.Label, Width: line.Width, Height: line.Height})
		}
	}
	if len(blocks) == 0 {
		result.Errors = append(result.Errors, "No blocks found")
	}

	name := file.Name
	if name == "" {
		name = puzzleName(path)
	}
	result.Puzzle = model.NewPuzzle(name, file.Width, file.Height, blocks...)
	return result
}
