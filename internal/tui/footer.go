package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aerolab/foilbench/internal/sysmon"
)

// FooterModel renders the bottom bar: key hints and system stats.
type FooterModel struct {
	keymap KeyMap
	stats  sysmon.Stats
	width  int
}

// NewFooterModel creates a new footer.
func NewFooterModel(keymap KeyMap) FooterModel {
	return FooterModel{keymap: keymap}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// SetStats updates the system usage snapshot shown on the right.
func (f *FooterModel) SetStats(s sysmon.Stats) {
	f.stats = s
}

// View renders the footer.
func (f FooterModel) View() string {
	var hints []string
	for _, b := range []struct{ key, desc string }{
		{f.keymap.Up.Help().Key + "/" + f.keymap.Down.Help().Key, "scroll"},
		{f.keymap.NextFoil.Help().Key, f.keymap.NextFoil.Help().Desc},
		{f.keymap.Quit.Help().Key, f.keymap.Quit.Help().Desc},
	} {
		hints = append(hints, footerKeyStyle.Render(b.key)+" "+footerDescStyle.Render(b.desc))
	}
	left := strings.Join(hints, "  ")

	right := footerStatStyle.Render(f.stats.String())

	gap := f.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + spaces(gap) + right
}
