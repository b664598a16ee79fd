package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestImportTOML(t *testing.T) {
	path := writeFile(t, "strips.toml", `
name = "Two strips"
width = 4
height = 4

[[blocks]]
label = "strip"
width = 4
height = 2
quantity = 2
`)

	result := ImportTOML(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	p := result.Puzzle
	if p.Name != "Two strips" {
		t.Errorf("expected name 'Two strips', got '%s'", p.Name)
	}
	if p.Width != 4 || p.Height != 4 {
		t.Errorf("expected 4x4 board, got %dx%d", p.Width, p.Height)
	}
	if len(p.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(p.Blocks))
	}
	if p.Blocks[0].Label != "strip" {
		t.Errorf("expected label 'strip', got '%s'", p.Blocks[0].Label)
	}
}

func TestImportTOML_DefaultsNameAndQuantity(t *testing.T) {
	path := writeFile(t, "square.toml", `
width = 2
height = 1

[[blocks]]
width = 1
height = 1

[[blocks]]
width = 1
height = 1
`)

	result := ImportTOML(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Puzzle.Name != "square" {
		t.Errorf("expected name from file, got '%s'", result.Puzzle.Name)
	}
	if len(result.Puzzle.Blocks) != 2 {
		t.Errorf("expected 2 blocks, got %d", len(result.Puzzle.Blocks))
	}
}

func TestImportTOML_UnknownKeysWarn(t *testing.T) {
	path := writeFile(t, "extra.toml", `
width = 1
height = 1
colour = "red"

[[blocks]]
width = 1
height = 1
`)

	result := ImportTOML(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "colour") {
		t.Errorf("expected warning about 'colour', got %v", result.Warnings)
	}
}

func TestImportTOML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "width = = 3", "Cannot read TOML"},
		{"no board", "[[blocks]]\nwidth = 1\nheight = 1\n", "Board width and height are required"},
		{"no blocks", "width = 1\nheight = 1\n", "No blocks found"},
		{"negative quantity", "width = 1\nheight = 1\n[[blocks]]\nwidth = 1\nheight = 1\nquantity = -1\n", "Quantity must be positive"},
		{"huge quantity", "width = 1\nheight = 1\n[[blocks]]\nwidth = 1\nheight = 1\nquantity = 1000000000000\n", "Too many blocks"},
		{"quantities add up", "width = 1\nheight = 1\n[[blocks]]\nwidth = 1\nheight = 1\nquantity = 9800\n[[blocks]]\nwidth = 1\nheight = 1\nquantity = 2\n", "Block 2: Too many blocks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ImportTOML(writeFile(t, "bad.toml", tt.content))

			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error containing %q, got %v", tt.want, result.Errors)
			}
		})
	}
}

func TestLoad_DispatchesByExtension(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"p.toml", "width = 2\nheight = 1\n[[blocks]]\nwidth = 2\nheight = 1\n"},
		{"p.CSV", "Label,Width,Height\nboard,2,1\nA,2,1\n"},
		{"p.txt", "2 1 1 2 1"},
		{"p", "2 1 1 1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Load(writeFile(t, tt.name, tt.content))

			if err := result.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Puzzle.Width != 2 || result.Puzzle.Height != 1 || len(result.Puzzle.Blocks) != 1 {
				t.Errorf("unexpected puzzle %+v", result.Puzzle)
			}
		})
	}
}

func TestLoad_Excel(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"board", 1, 1},
		{"A", 1, 1},
	})

	result := Load(path)

	if err := result.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Puzzle.Blocks) != 1 {
		t.Errorf("expected 1 block, got %d", len(result.Puzzle.Blocks))
	}
}
