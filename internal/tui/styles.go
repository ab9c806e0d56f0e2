package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aerolab/foilbench/internal/ui"
)

// Style variables for the results dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	columnStyle     lipgloss.Style
	airfoilStyle    lipgloss.Style
	valueStyle      lipgloss.Style
	missingStyle    lipgloss.Style
	selectedStyle   lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	footerStatStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	columnStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Dim)

	airfoilStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	missingStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	selectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerStatStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
