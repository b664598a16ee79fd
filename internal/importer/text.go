package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/piwi3910/BlockFit/internal/model"
)

// ParseText reads the plain puzzle format: whitespace separated integers
// giving the board width and height, the number of blocks, then one width
// and height pair per block. Tokens after the last block are ignored.
func ParseText(r io.Reader) (model.Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading %s: %w", what, err)
			}
			return 0, fmt.Errorf("missing %s", what)
		}
		n, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", what, scanner.Text())
		}
		return n, nil
	}

	width, err := next("board width")
	if err != nil {
		return model.Puzzle{}, err
	}
	height, err := next("board height")
	if err != nil {
		return model.Puzzle{}, err
	}
	count, err := next("block count")
	if err != nil {
		return model.Puzzle{}, err
	}
	if count < 0 {
		return model.Puzzle{}, fmt.Errorf("negative block count %d", count)
	}
	if count > model.MaxBlocks {
		return model.Puzzle{}, fmt.Errorf("block count %d exceeds %d", count, model.MaxBlocks)
	}

	blocks := make([]model.Block, 0, count)
	for i := 1; i <= count; i++ {
		w, err := next(fmt.Sprintf("width of block %d", i))
		if err != nil {
			return model.Puzzle{}, err
		}
		h, err := next(fmt.Sprintf("height of block %d", i))
		if err != nil {
			return model.Puzzle{}, err
		}
		blocks = append(blocks, model.NewBlock(w, h))
	}

	return model.NewPuzzle("", width, height, blocks...), nil
}

// ImportText reads a plain text puzzle file.
func ImportText(path string) ImportResult {
	result := ImportResult{}

	f, err := os.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	defer f.Close()

	p, err := ParseText(f)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	p.Name = puzzleName(path)
	result.Puzzle = p
	return result
}
