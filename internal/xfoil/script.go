package xfoil

import (
	"fmt"
	"strings"

	"github.com/aerolab/foilbench/internal/aero"
)

// BuildScript synthesizes the XFOIL command session for one case.
//
// The session disables the graphics window, loads the airfoil (NACA
// designations are generated in-program, anything else is loaded from a
// coordinate file), enters the OPER menu in viscous mode at the case's
// Reynolds number, accumulates a polar to polarFile, solves the single
// angle of attack, and quits.
func BuildScript(c aero.Case, iterations int, polarFile string) string {
	var b strings.Builder

	// PLOP G toggles the graphics hardcopy so a headless run never blocks
	// on a display.
	b.WriteString("PLOP\nG\n\n")

	if digits, ok := nacaDigits(c.Airfoil); ok {
		fmt.Fprintf(&b, "NACA %s\n", digits)
	} else {
		fmt.Fprintf(&b, "LOAD %s\n", c.Airfoil)
	}

	b.WriteString("OPER\n")
	fmt.Fprintf(&b, "VISC %g\n", c.Reynolds)
	fmt.Fprintf(&b, "ITER %d\n", iterations)
	fmt.Fprintf(&b, "PACC\n%s\n\n", polarFile)
	fmt.Fprintf(&b, "ALFA %.3f\n", c.Alpha)
	b.WriteString("PACC\n")
	b.WriteString("\nQUIT\n")

	return b.String()
}

// nacaDigits extracts the digit designation from identifiers like
// "naca2412" or "NACA 23012". ok is false for anything that is not a 4- or
// 5-digit NACA designation, in which case the identifier is treated as a
// coordinate file path.
func nacaDigits(airfoil string) (string, bool) {
	s := strings.TrimSpace(strings.ToLower(airfoil))
	s = strings.TrimPrefix(s, "naca")
	s = strings.TrimSpace(s)

	if len(s) != 4 && len(s) != 5 {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return s, true
}
