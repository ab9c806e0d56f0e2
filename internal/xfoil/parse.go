package xfoil

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aerolab/foilbench/internal/aero"
	apperrors "github.com/aerolab/foilbench/internal/errors"
)

// alphaTolerance is the matching tolerance between the requested angle of
// attack and the angle recorded in the polar file, which is printed with
// three decimals.
const alphaTolerance = 5e-3

// ParsePolarFile reads an XFOIL polar accumulation file and extracts the
// coefficients for the requested angle of attack.
//
// A polar file consists of a fixed header (banner, airfoil and flow
// parameters, column labels, a dashed separator) followed by one data line
// per converged angle:
//
//	alpha    CL        CD       CDp       CM     Top_Xtr  Bot_Xtr
//
// found is false when the file holds no data line for alpha, i.e. the
// viscous solution did not converge for that case.
func ParsePolarFile(path string, alpha float64) (aero.Coefficients, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return aero.Coefficients{}, false, apperrors.WrapError(err, "opening polar file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	inData := false
	for scanner.Scan() {
		line := scanner.Text()
		if !inData {
			// The dashed separator line marks the start of the data block.
			if strings.HasPrefix(strings.TrimSpace(line), "----") {
				inData = true
			}
			continue
		}

		coeffs, a, ok := parsePolarLine(line)
		if ok && math.Abs(a-alpha) < alphaTolerance {
			return coeffs, true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return aero.Coefficients{}, false, apperrors.WrapError(err, "reading polar file")
	}
	return aero.Coefficients{}, false, nil
}

// parsePolarLine parses one polar data line into coefficients and its angle
// of attack. ok is false for blank or malformed lines.
func parsePolarLine(line string) (aero.Coefficients, float64, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return aero.Coefficients{}, 0, false
	}

	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return aero.Coefficients{}, 0, false
		}
		vals[i] = v
	}

	// Column order: alpha, CL, CD, CDp, CM.
	return aero.Coefficients{CL: vals[1], CD: vals[2], CM: vals[4]}, vals[0], true
}
