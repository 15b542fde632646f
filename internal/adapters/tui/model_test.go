package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/latt/internal/core/domain"
)

type fakeReader struct {
	stats domain.LatticeStats
	top   []domain.LatticeEntry
}

func (f *fakeReader) Stats() domain.LatticeStats          { return f.stats }
func (f *fakeReader) TopValues(int) []domain.LatticeEntry { return f.top }

func TestModel_Update(t *testing.T) {
	t.Run("quit keys terminate the program", func(t *testing.T) {
		for _, key := range []string{"q", "esc", "ctrl+c"} {
			m := NewModel(&fakeReader{})

			var msg tea.KeyMsg
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			_, cmd := m.Update(msg)
			require.NotNil(t, cmd, "key %q should quit", key)
			assert.Equal(t, tea.Quit(), cmd())
		}
	})

	t.Run("tick refreshes from the reader and reschedules", func(t *testing.T) {
		reader := &fakeReader{
			stats: domain.LatticeStats{TotalValues: 2, NextID: 3},
			top: []domain.LatticeEntry{
				{Text: "42", ID: 1, UsageCount: 2, Locations: map[string]struct{}{"/a.rs": {}}},
			},
		}
		m := NewModel(reader)

		updated, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd)

		model, ok := updated.(Model)
		require.True(t, ok)
		assert.Equal(t, 2, model.stats.TotalValues)
		require.Len(t, model.top, 1)
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		m := NewModel(&fakeReader{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		assert.Nil(t, cmd)
	})
}

func TestModel_View(t *testing.T) {
	t.Run("renders stats and entries", func(t *testing.T) {
		m := NewModel(&fakeReader{})
		m.stats = domain.LatticeStats{TotalValues: 2, NextID: 3, HighUsageValues: 1}
		m.top = []domain.LatticeEntry{
			{Text: "42", ID: 1, UsageCount: 12, Locations: map[string]struct{}{"/a.rs": {}}},
		}

		view := m.View()
		assert.Contains(t, view, "values: 2")
		assert.Contains(t, view, "42")
		assert.Contains(t, view, "q to quit")
	})

	t.Run("shows a placeholder when empty", func(t *testing.T) {
		m := NewModel(&fakeReader{})
		assert.Contains(t, m.View(), "waiting for values...")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "aaaa…", truncate("aaaaaaaa", 5))
}
