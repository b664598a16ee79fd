package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func TestExportDXF_CreatesDrawing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.dxf")

	p, sol := buildTestPuzzle()
	if err := ExportDXF(path, p, sol); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen DXF: %v", err)
	}

	lines := 0
	for _, e := range drawing.Entities() {
		if _, ok := e.(*entity.Line); ok {
			lines++
		}
	}
	// Board outline plus one outline per placement
	if want := 4 * (1 + len(sol.Placements)); lines != want {
		t.Errorf("expected %d lines, got %d", want, lines)
	}
}

func TestExportDXF_NoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")

	p, _ := buildTestPuzzle()
	err := ExportDXF(path, p, model.Solution{})
	if !errors.Is(err, ErrNothingPlaced) {
		t.Fatalf("expected ErrNothingPlaced, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file to be written")
	}
}
