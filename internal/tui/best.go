package tui

import (
	"fmt"
	"strings"

	"github.com/aerolab/foilbench/internal/aero"
	"github.com/aerolab/foilbench/internal/format"
)

// BestPanel renders the per-angle best-airfoil table with a scroll window.
type BestPanel struct {
	rows   aero.BestChoice
	offset int
	width  int
	height int
}

// NewBestPanel creates the panel for a best-airfoil selection.
func NewBestPanel(best aero.BestChoice) BestPanel {
	return BestPanel{rows: best}
}

// SetSize updates the panel dimensions.
func (p *BestPanel) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.clampOffset()
}

// visibleRows is the number of data rows that fit inside the panel.
// Two lines go to the border and one to the column header.
func (p BestPanel) visibleRows() int {
	v := p.height - 3
	if v < 1 {
		v = 1
	}
	return v
}

func (p *BestPanel) clampOffset() {
	max := len(p.rows) - p.visibleRows()
	if max < 0 {
		max = 0
	}
	if p.offset > max {
		p.offset = max
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// ScrollBy moves the window by n rows, clamped to the table bounds.
func (p *BestPanel) ScrollBy(n int) {
	p.offset += n
	p.clampOffset()
}

// PageSize returns the row count of one scroll page.
func (p BestPanel) PageSize() int {
	return p.visibleRows()
}

// View renders the panel.
func (p BestPanel) View() string {
	var b strings.Builder
	b.WriteString(columnStyle.Render(fmt.Sprintf("%-8s  %-22s %-22s %-22s",
		"Alpha", "Highest CL", "Lowest CD", "Best L/D")))
	b.WriteString("\n")

	if len(p.rows) == 0 {
		b.WriteString(missingStyle.Render("no converged results"))
	}

	end := p.offset + p.visibleRows()
	if end > len(p.rows) {
		end = len(p.rows)
	}
	for i := p.offset; i < end; i++ {
		row := p.rows[i]
		line := fmt.Sprintf("%-8s  %s %s %s %s %s %s",
			format.FormatAlpha(row.Alpha),
			airfoilStyle.Render(fmt.Sprintf("%-12s", row.BestCLAirfoil)),
			valueStyle.Render(fmt.Sprintf("%-9s", format.FormatCoefficient(row.BestCL))),
			airfoilStyle.Render(fmt.Sprintf("%-12s", row.BestCDAirfoil)),
			valueStyle.Render(fmt.Sprintf("%-9s", format.FormatCoefficient(row.BestCD))),
			airfoilStyle.Render(fmt.Sprintf("%-12s", row.BestLDAirfoil)),
			valueStyle.Render(fmt.Sprintf("%-9s", format.FormatRatio(row.BestLD))))
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return panelStyle.Width(p.width - 2).Render(b.String())
}
