// Package aero defines the domain types shared between the sweep driver,
// the aggregator, and the reporting layers: the (airfoil, Reynolds, alpha)
// case, its computed coefficients, and the ordered result table.
package aero

import "math"

// Case identifies a single solver invocation: one airfoil at one angle of
// attack for the sweep's fixed Reynolds number.
type Case struct {
	// Airfoil is the geometry identifier, either a NACA designation such as
	// "naca2412" or a path to a coordinate file understood by the solver.
	Airfoil string
	// Reynolds is the chord Reynolds number of the flow.
	Reynolds float64
	// Alpha is the angle of attack in degrees.
	Alpha float64
}

// Coefficients holds the aerodynamic coefficients computed for one Case.
type Coefficients struct {
	// CL is the lift coefficient.
	CL float64
	// CD is the drag coefficient.
	CD float64
	// CM is the quarter-chord pitching moment coefficient.
	CM float64
}

// LiftDrag returns the lift-to-drag ratio CL/CD. It returns NaN when the
// drag coefficient is zero or negative, so degenerate polars never win a
// best-airfoil comparison.
func (c Coefficients) LiftDrag() float64 {
	if c.CD <= 0 {
		return math.NaN()
	}
	return c.CL / c.CD
}

// Round3 returns the coefficients rounded to three decimal places, the
// precision at which polar results are tabulated and reported.
func (c Coefficients) Round3() Coefficients {
	return Coefficients{
		CL: round3(c.CL),
		CD: round3(c.CD),
		CM: round3(c.CM),
	}
}

func round3(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1000) / 1000
}

// Result is one row of the sweep table: a Case plus its coefficients.
// When the solver failed to converge for the Case, Converged is false and
// all coefficients are NaN.
type Result struct {
	Case
	Coefficients
	// Converged reports whether the solver produced a polar point for this
	// case. Non-converged rows are kept in the table as missing data.
	Converged bool
}

// MissingResult returns the placeholder row recorded when the solver does
// not converge for a case.
func MissingResult(c Case) Result {
	nan := math.NaN()
	return Result{
		Case:         c,
		Coefficients: Coefficients{CL: nan, CD: nan, CM: nan},
		Converged:    false,
	}
}

// Table is the ordered collection of sweep results, one row per configured
// (airfoil, angle) pair. Row order is airfoil-major: all angles of the first
// configured airfoil, then the second, and so on, with angles ascending.
type Table []Result

// Cases builds the Cartesian product of airfoils and angles at the given
// Reynolds number, in the deterministic order the Table will carry.
func Cases(airfoils []string, reynolds float64, alphas []float64) []Case {
	cases := make([]Case, 0, len(airfoils)*len(alphas))
	for _, airfoil := range airfoils {
		for _, alpha := range alphas {
			cases = append(cases, Case{Airfoil: airfoil, Reynolds: reynolds, Alpha: alpha})
		}
	}
	return cases
}

// Angles returns the distinct angles of attack in first-appearance order.
func (t Table) Angles() []float64 {
	seen := make(map[float64]bool, len(t))
	var angles []float64
	for _, r := range t {
		if !seen[r.Alpha] {
			seen[r.Alpha] = true
			angles = append(angles, r.Alpha)
		}
	}
	return angles
}

// Airfoils returns the distinct airfoil identifiers in first-appearance order.
func (t Table) Airfoils() []string {
	seen := make(map[string]bool, len(t))
	var airfoils []string
	for _, r := range t {
		if !seen[r.Airfoil] {
			seen[r.Airfoil] = true
			airfoils = append(airfoils, r.Airfoil)
		}
	}
	return airfoils
}

// ForAirfoil returns the rows belonging to one airfoil, preserving order.
func (t Table) ForAirfoil(airfoil string) Table {
	var rows Table
	for _, r := range t {
		if r.Airfoil == airfoil {
			rows = append(rows, r)
		}
	}
	return rows
}

// ConvergedCount returns the number of rows with a converged solution.
func (t Table) ConvergedCount() int {
	n := 0
	for _, r := range t {
		if r.Converged {
			n++
		}
	}
	return n
}
