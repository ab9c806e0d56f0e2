package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aerolab/foilbench/internal/aero"
)

func sampleTable() aero.Table {
	return aero.Table{
		{
			Case:         aero.Case{Airfoil: "naca0012", Reynolds: 1e6, Alpha: 0},
			Coefficients: aero.Coefficients{CL: 0.1, CD: 0.01, CM: 0},
			Converged:    true,
		},
		{
			Case:         aero.Case{Airfoil: "naca0012", Reynolds: 1e6, Alpha: 2},
			Coefficients: aero.Coefficients{CL: 0.3, CD: 0.012, CM: -0.01},
			Converged:    true,
		},
		{
			Case:         aero.Case{Airfoil: "naca2412", Reynolds: 1e6, Alpha: 0},
			Coefficients: aero.Coefficients{CL: 0.25, CD: 0.009, CM: -0.05},
			Converged:    true,
		},
		aero.MissingResult(aero.Case{Airfoil: "naca2412", Reynolds: 1e6, Alpha: 2}),
	}
}

func newSizedModel(t *testing.T) Model {
	t.Helper()
	table := sampleTable()
	m := NewModel(table, aero.Best(table), "dev")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	sized, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return sized
}

func TestModelView(t *testing.T) {
	m := newSizedModel(t)
	view := m.View()

	for _, s := range []string{"foilbench results", "4 cases", "Alpha", "naca0012"} {
		if !strings.Contains(view, s) {
			t.Errorf("view should contain %q:\n%s", s, view)
		}
	}
}

func TestModelViewBeforeSizing(t *testing.T) {
	table := sampleTable()
	m := NewModel(table, aero.Best(table), "dev")
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newSizedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("cmd() = %#v, want tea.QuitMsg", msg)
	}
}

func TestModelNextAirfoilKey(t *testing.T) {
	m := newSizedModel(t)
	if got := m.polar.Selected(); got != "naca0012" {
		t.Fatalf("initial airfoil = %q", got)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if got := m.polar.Selected(); got != "naca2412" {
		t.Errorf("after tab airfoil = %q, want naca2412", got)
	}
	if view := m.polar.View(); !strings.Contains(view, "not converged") {
		t.Errorf("polar view should flag the missing row:\n%s", view)
	}

	// Wraps around at the end of the airfoil list
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if got := m.polar.Selected(); got != "naca0012" {
		t.Errorf("after wrap airfoil = %q, want naca0012", got)
	}
}

func TestBestPanelScrollClamped(t *testing.T) {
	table := sampleTable()
	p := NewBestPanel(aero.Best(table))
	p.SetSize(80, 4)

	p.ScrollBy(-10)
	if p.offset != 0 {
		t.Errorf("offset after scrolling above top = %d, want 0", p.offset)
	}

	p.ScrollBy(100)
	if p.offset > len(p.rows) {
		t.Errorf("offset after scrolling past end = %d", p.offset)
	}
}

func TestModelTick(t *testing.T) {
	m := newSizedModel(t)
	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next sample")
	}

	updated, _ := m.Update(SysStatsMsg{CPUPercent: 50})
	m = updated.(Model)
	if m.footer.stats.CPUPercent != 50 {
		t.Errorf("footer stats CPU = %f, want 50", m.footer.stats.CPUPercent)
	}
}
