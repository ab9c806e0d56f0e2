package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aerolab/foilbench/internal/aero"
)

// HeaderModel renders the top bar: title, version, and case totals.
type HeaderModel struct {
	version   string
	cases     int
	converged int
	width     int
}

// NewHeaderModel creates a new header for the given result table.
func NewHeaderModel(version string, table aero.Table) HeaderModel {
	return HeaderModel{
		version:   version,
		cases:     len(table),
		converged: table.ConvergedCount(),
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "foilbench results"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := versionStyle.Render(" | ")
	totals := versionStyle.Render(fmt.Sprintf("%d/%d cases converged", h.converged, h.cases))

	leftPart := title + pipe + totals
	leftLen := lipgloss.Width(leftPart)

	gap := h.width - 2 - leftLen
	if gap < 0 {
		gap = 0
	}

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
