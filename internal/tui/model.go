package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aerolab/foilbench/internal/aero"
	apperrors "github.com/aerolab/foilbench/internal/errors"
	"github.com/aerolab/foilbench/internal/sysmon"
)

// TickMsg drives the periodic system stats refresh.
type TickMsg time.Time

// SysStatsMsg carries a system usage snapshot to the footer.
type SysStatsMsg sysmon.Stats

// Layout constants for the results dashboard.
const (
	headerHeight         = 1
	footerHeight         = 1
	minBodyHeight        = 4
	BestPanelWidthPercent = 60
)

// Model is the root bubbletea model for the results dashboard. It is a
// read-only view over a finished sweep: the left panel shows the per-angle
// best-airfoil table, the right panel the polar of one airfoil at a time.
type Model struct {
	header HeaderModel
	best   BestPanel
	polar  PolarPanel
	footer FooterModel

	keymap KeyMap

	width  int
	height int
}

// NewModel creates a dashboard model over a finished sweep.
func NewModel(table aero.Table, best aero.BestChoice, version string) Model {
	keymap := DefaultKeyMap()
	return Model{
		header: NewHeaderModel(version, table),
		best:   NewBestPanel(best),
		polar:  NewPolarPanel(table),
		footer: NewFooterModel(keymap),
		keymap: keymap,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.footer.SetStats(sysmon.Stats(msg))
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		m.best.ScrollBy(-1)
	case key.Matches(msg, m.keymap.Down):
		m.best.ScrollBy(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.best.ScrollBy(-m.best.PageSize())
	case key.Matches(msg, m.keymap.PageDown):
		m.best.ScrollBy(m.best.PageSize())

	case key.Matches(msg, m.keymap.NextFoil):
		m.polar.NextAirfoil()
	}
	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	footer := m.footer.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.best.View(), m.polar.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) layoutPanels() {
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < minBodyHeight {
		bodyHeight = minBodyHeight
	}
	bestWidth := m.width * BestPanelWidthPercent / 100

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.best.SetSize(bestWidth, bodyHeight)
	m.polar.SetSize(m.width-bestWidth, bodyHeight)
}

// Run is the public entry point for the dashboard.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(table aero.Table, best aero.BestChoice, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(table, best, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}
