package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aerolab/foilbench/internal/aero"
)

// TestWritePDF is a rendering smoke test: the document must be produced
// and non-empty, including when some rows are missing.
func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "performance.pdf")
	table := sampleTable()
	best := aero.Best(table)

	if err := WritePDF(path, table, best, 1e6); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}

// TestWritePDFEmptyTable verifies an all-missing table still renders a
// document rather than failing the reporting stage.
func TestWritePDFEmptyTable(t *testing.T) {
	table := aero.Table{
		aero.MissingResult(aero.Case{Airfoil: "naca0012", Reynolds: 1e6, Alpha: 0}),
	}
	path := filepath.Join(t.TempDir(), "performance.pdf")

	if err := WritePDF(path, table, aero.Best(table), 1e6); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
}

// TestWritePDFBadPath verifies the write failure surfaces as an error and
// leaves no partial state behind for the caller's table.
func TestWritePDFBadPath(t *testing.T) {
	table := sampleTable()
	err := WritePDF(filepath.Join(t.TempDir(), "no", "such", "dir", "x.pdf"), table, aero.Best(table), 1e6)
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
