package tui

import (
	"fmt"
	"strings"

	"github.com/aerolab/foilbench/internal/aero"
	"github.com/aerolab/foilbench/internal/format"
)

// PolarPanel renders the polar of a single airfoil: one row per angle of
// attack with the lift, drag, moment coefficients and the lift-to-drag
// ratio. Tab cycles through the swept airfoils.
type PolarPanel struct {
	table    aero.Table
	airfoils []string
	selected int
	width    int
	height   int
}

// NewPolarPanel creates the panel over a result table.
func NewPolarPanel(table aero.Table) PolarPanel {
	return PolarPanel{
		table:    table,
		airfoils: table.Airfoils(),
	}
}

// SetSize updates the panel dimensions.
func (p *PolarPanel) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// NextAirfoil advances the selection, wrapping around.
func (p *PolarPanel) NextAirfoil() {
	if len(p.airfoils) > 0 {
		p.selected = (p.selected + 1) % len(p.airfoils)
	}
}

// Selected returns the currently selected airfoil name.
func (p PolarPanel) Selected() string {
	if len(p.airfoils) == 0 {
		return ""
	}
	return p.airfoils[p.selected]
}

// View renders the panel.
func (p PolarPanel) View() string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render(p.Selected()))
	b.WriteString("\n")
	b.WriteString(columnStyle.Render(fmt.Sprintf("%-8s %-8s %-8s %-8s %-8s",
		"Alpha", "CL", "CD", "CM", "L/D")))
	b.WriteString("\n")

	for i, r := range p.table.ForAirfoil(p.Selected()) {
		if i > 0 {
			b.WriteString("\n")
		}
		if !r.Converged {
			b.WriteString(fmt.Sprintf("%-8s %s",
				format.FormatAlpha(r.Alpha), missingStyle.Render("not converged")))
			continue
		}
		b.WriteString(fmt.Sprintf("%-8s %s %s %s %s",
			format.FormatAlpha(r.Alpha),
			valueStyle.Render(fmt.Sprintf("%-8s", format.FormatCoefficient(r.CL))),
			valueStyle.Render(fmt.Sprintf("%-8s", format.FormatCoefficient(r.CD))),
			valueStyle.Render(fmt.Sprintf("%-8s", format.FormatCoefficient(r.CM))),
			valueStyle.Render(fmt.Sprintf("%-8s", fmt.Sprintf("%.1f", r.LiftDrag())))))
	}

	return panelStyle.Width(p.width - 2).Render(b.String())
}
