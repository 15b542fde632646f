// Package style defines the latt color palette and status icons shared by
// the dashboard and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Violet = lipgloss.Color("#7C6FF0")
	Slate  = lipgloss.Color("#5C6672")
	Mist   = lipgloss.Color("#E8EAF2")
	Green  = lipgloss.Color("#2EA883")
	Red    = lipgloss.Color("#D64545")
	Yellow = lipgloss.Color("#E3A008")
)

// Status icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)
