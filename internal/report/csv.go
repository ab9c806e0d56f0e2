// Package report persists sweep results: the CSV table and the multi-page
// PDF of comparison plots. Reporting failures never touch the in-memory
// table, so a broken disk or plot cannot corrupt computed results.
package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aerolab/foilbench/internal/aero"
	apperrors "github.com/aerolab/foilbench/internal/errors"
)

// csvHeader is the persisted column layout. Non-converged rows carry NaN
// in every coefficient column.
var csvHeader = []string{
	"airfoil",
	"angle_of_attack",
	"reynolds",
	"lift_coeff",
	"drag_coeff",
	"moment_coeff",
}

// WriteCSV persists the sweep table to path, creating parent directories as
// needed. Values are formatted to round-trip exactly through ReadCSV.
func WriteCSV(path string, table aero.Table) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "creating output directory")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return apperrors.WrapError(err, "creating table file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return apperrors.WrapError(err, "writing table header")
	}
	for _, r := range table {
		record := []string{
			r.Airfoil,
			formatFloat(r.Alpha),
			formatFloat(r.Reynolds),
			formatFloat(r.CL),
			formatFloat(r.CD),
			formatFloat(r.CM),
		}
		if err := w.Write(record); err != nil {
			return apperrors.WrapError(err, "writing table row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.WrapError(err, "flushing table file")
	}
	return f.Close()
}

// ReadCSV loads a table previously written by WriteCSV, reproducing row
// order and values exactly. A row with NaN coefficients is restored as a
// non-converged result.
func ReadCSV(path string) (aero.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "opening table file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.WrapError(err, "reading table file")
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table file %s is empty", path)
	}
	if len(records[0]) != len(csvHeader) || records[0][0] != csvHeader[0] {
		return nil, fmt.Errorf("table file %s has unexpected header %v", path, records[0])
	}

	table := make(aero.Table, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRecord(record)
		if err != nil {
			return nil, apperrors.WrapError(err, "parsing table row %d", i+1)
		}
		table = append(table, row)
	}
	return table, nil
}

func parseRecord(record []string) (aero.Result, error) {
	if len(record) != len(csvHeader) {
		return aero.Result{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(record))
	}

	vals := make([]float64, 5)
	for i, field := range record[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return aero.Result{}, fmt.Errorf("column %q: %w", csvHeader[i+1], err)
		}
		vals[i] = v
	}

	coeffs := aero.Coefficients{CL: vals[2], CD: vals[3], CM: vals[4]}
	return aero.Result{
		Case:         aero.Case{Airfoil: record[0], Reynolds: vals[1], Alpha: vals[0]},
		Coefficients: coeffs,
		Converged:    !math.IsNaN(coeffs.CL) && !math.IsNaN(coeffs.CD) && !math.IsNaN(coeffs.CM),
	}, nil
}

// formatFloat renders a float so ParseFloat restores the identical value,
// including NaN for missing coefficients.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
