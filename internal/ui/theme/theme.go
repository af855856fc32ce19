// Package theme holds the palette and shared lipgloss styles of the TUI.
package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/skilltree"
)

// Palette. Dark slate background, indigo for focus, and one colour per
// node status.
var (
	Primary   = lipgloss.Color("#6366F1")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#10B981")
	Progress  = lipgloss.Color("#0EA5E9")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	Muted     = lipgloss.Color("#64748B")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Heading  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Card  = lipgloss.NewStyle().Background(BgCard).Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(1, 2)
	Panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)

	Selected    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected  = lipgloss.NewStyle().Foreground(Text)
	ErrorText   = lipgloss.NewStyle().Foreground(Error).Bold(true)
	SuccessText = lipgloss.NewStyle().Foreground(Success).Bold(true)

	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Background(BgCard).Foreground(TextDim).Padding(0, 2)
)

var statusColors = map[skilltree.Status]lipgloss.Style{
	skilltree.StatusCompleted:  lipgloss.NewStyle().Foreground(Success),
	skilltree.StatusInProgress: lipgloss.NewStyle().Foreground(Progress),
	skilltree.StatusAvailable:  lipgloss.NewStyle().Foreground(Text),
	skilltree.StatusLocked:     lipgloss.NewStyle().Foreground(Muted),
}

// StatusColor returns the style a node of status s is drawn in.
func StatusColor(s skilltree.Status) lipgloss.Style {
	if st, ok := statusColors[s]; ok {
		return st
	}
	return lipgloss.NewStyle().Foreground(TextDim)
}
