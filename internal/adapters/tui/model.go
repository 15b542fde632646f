// Package tui implements the live lattice dashboard for the watch command.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/latt/internal/ui/style"
)

// refreshInterval is how often the dashboard re-queries the lattice.
const refreshInterval = time.Second

// defaultLimit is the number of top values shown.
const defaultLimit = 15

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(style.Violet)
	statsStyle  = lipgloss.NewStyle().Foreground(style.Slate)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(style.Mist)
	valueStyle  = lipgloss.NewStyle().Foreground(style.Green)
	dimStyle    = lipgloss.NewStyle().Foreground(style.Slate)
)

// tickMsg triggers a dashboard refresh.
type tickMsg time.Time

// Model is the bubbletea model for the dashboard.
type Model struct {
	reader ports.LatticeReader
	limit  int

	stats domain.LatticeStats
	top   []domain.LatticeEntry
}

// NewModel creates a dashboard model querying the given reader.
func NewModel(reader ports.LatticeReader) Model {
	return Model{
		reader: reader,
		limit:  defaultLimit,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tickMsg:
		m.stats = m.reader.Stats()
		m.top = m.reader.TopValues(m.limit)
		return m, tick()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("latt "+style.Dot+" value lattice") + "\n")
	b.WriteString(statsStyle.Render(fmt.Sprintf(
		"values: %d  next id: %d  high usage: %d",
		m.stats.TotalValues, m.stats.NextID, m.stats.HighUsageValues,
	)) + "\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%6s  %-20s %8s  %s", "ID", "VALUE", "COUNT", "FILES")) + "\n")

	for _, entry := range m.top {
		b.WriteString(fmt.Sprintf(
			"%6d  %s %8d  %d\n",
			entry.ID,
			valueStyle.Render(fmt.Sprintf("%-20s", truncate(entry.Text, 20))),
			entry.UsageCount,
			len(entry.Locations),
		))
	}

	if len(m.top) == 0 {
		b.WriteString(dimStyle.Render("waiting for values...") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("q to quit"))
	return b.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}
