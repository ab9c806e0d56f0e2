package xfoil

import (
	"strings"
	"testing"

	"github.com/aerolab/foilbench/internal/aero"
)

// TestBuildScript checks the synthesized XFOIL command session.
func TestBuildScript(t *testing.T) {
	c := aero.Case{Airfoil: "naca2412", Reynolds: 1e6, Alpha: 5}
	script := BuildScript(c, 50, "polar.txt")

	t.Run("NACA designation generated in-program", func(t *testing.T) {
		if !strings.Contains(script, "NACA 2412\n") {
			t.Errorf("script missing NACA command:\n%s", script)
		}
		if strings.Contains(script, "LOAD") {
			t.Errorf("script should not LOAD for a NACA designation:\n%s", script)
		}
	})

	t.Run("viscous mode at configured Reynolds", func(t *testing.T) {
		if !strings.Contains(script, "VISC 1e+06\n") {
			t.Errorf("script missing VISC command:\n%s", script)
		}
	})

	t.Run("iteration limit set", func(t *testing.T) {
		if !strings.Contains(script, "ITER 50\n") {
			t.Errorf("script missing ITER command:\n%s", script)
		}
	})

	t.Run("polar accumulation to file", func(t *testing.T) {
		if !strings.Contains(script, "PACC\npolar.txt\n") {
			t.Errorf("script missing PACC setup:\n%s", script)
		}
	})

	t.Run("single angle solved", func(t *testing.T) {
		if !strings.Contains(script, "ALFA 5.000\n") {
			t.Errorf("script missing ALFA command:\n%s", script)
		}
	})

	t.Run("session quits", func(t *testing.T) {
		if !strings.HasSuffix(script, "QUIT\n") {
			t.Errorf("script should end with QUIT:\n%s", script)
		}
	})
}

// TestBuildScriptCoordinateFile checks fallback to LOAD for non-NACA
// identifiers.
func TestBuildScriptCoordinateFile(t *testing.T) {
	c := aero.Case{Airfoil: "clarky.dat", Reynolds: 5e5, Alpha: -2}
	script := BuildScript(c, 80, "polar.txt")

	if !strings.Contains(script, "LOAD clarky.dat\n") {
		t.Errorf("script missing LOAD command:\n%s", script)
	}
	if !strings.Contains(script, "ALFA -2.000\n") {
		t.Errorf("script missing negative ALFA:\n%s", script)
	}
}

// TestNacaDigits covers designation extraction.
func TestNacaDigits(t *testing.T) {
	tests := []struct {
		in     string
		digits string
		ok     bool
	}{
		{"naca0012", "0012", true},
		{"NACA 23012", "23012", true},
		{"naca4412", "4412", true},
		{"clarky.dat", "", false},
		{"naca12", "", false},
		{"naca24a2", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			digits, ok := nacaDigits(tt.in)
			if digits != tt.digits || ok != tt.ok {
				t.Errorf("nacaDigits(%q) = (%q, %v), want (%q, %v)", tt.in, digits, ok, tt.digits, tt.ok)
			}
		})
	}
}
