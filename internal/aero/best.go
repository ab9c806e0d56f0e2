package aero

import "math"

// BestRow records, for one angle of attack, the airfoil that wins each
// selection criterion among the converged rows at that angle: highest lift
// coefficient, lowest drag coefficient, and highest lift-to-drag ratio.
// The lift-to-drag ratio is the headline criterion for airfoil comparison.
type BestRow struct {
	// Alpha is the angle of attack in degrees.
	Alpha float64
	// BestCLAirfoil is the airfoil with the highest lift coefficient.
	BestCLAirfoil string
	// BestCL is that airfoil's lift coefficient.
	BestCL float64
	// BestCDAirfoil is the airfoil with the lowest drag coefficient.
	BestCDAirfoil string
	// BestCD is that airfoil's drag coefficient.
	BestCD float64
	// BestLDAirfoil is the airfoil with the highest lift-to-drag ratio.
	// Empty when no converged row at the angle has a usable ratio (all
	// rows have zero drag).
	BestLDAirfoil string
	// BestLD is that airfoil's lift-to-drag ratio, NaN when BestLDAirfoil
	// is empty.
	BestLD float64
}

// BestChoice maps each angle of attack to its winning airfoils, ordered by
// the angles' first appearance in the source table.
type BestChoice []BestRow

// Best derives the per-angle best-airfoil selection from a sweep table.
//
// Rows are grouped by angle of attack; within each group only converged rows
// compete. Comparisons are strict, so the first row encountered in table
// order wins ties. Angles where no row converged are omitted entirely, and
// the result is recomputed in full from the table on every call.
func Best(t Table) BestChoice {
	var best BestChoice
	for _, alpha := range t.Angles() {
		row, ok := bestAtAngle(t, alpha)
		if ok {
			best = append(best, row)
		}
	}
	return best
}

// bestAtAngle selects the winners among converged rows at one angle.
// ok is false when no row at the angle converged.
func bestAtAngle(t Table, alpha float64) (BestRow, bool) {
	row := BestRow{Alpha: alpha, BestLD: math.NaN()}
	found := false
	haveLD := false
	for _, r := range t {
		if r.Alpha != alpha || !r.Converged {
			continue
		}
		if !found {
			row.BestCLAirfoil, row.BestCL = r.Airfoil, r.CL
			row.BestCDAirfoil, row.BestCD = r.Airfoil, r.CD
			found = true
		} else {
			if r.CL > row.BestCL {
				row.BestCLAirfoil, row.BestCL = r.Airfoil, r.CL
			}
			if r.CD < row.BestCD {
				row.BestCDAirfoil, row.BestCD = r.Airfoil, r.CD
			}
		}
		// NaN ratios (zero drag) are skipped so they can never win nor
		// poison the comparison for later rows.
		if ld := r.LiftDrag(); !math.IsNaN(ld) && (!haveLD || ld > row.BestLD) {
			row.BestLDAirfoil, row.BestLD = r.Airfoil, ld
			haveLD = true
		}
	}
	return row, found
}
