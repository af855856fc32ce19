package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/ui/theme"
)

// ProgressBar is a horizontal bar with an optional caption on its right,
// e.g. "350 / 1000 XP". Width covers bar and caption together.
type ProgressBar struct {
	Percent float64
	Caption string
	Width   int
}

func NewProgressBar(percent float64, caption string, width int) ProgressBar {
	return ProgressBar{Percent: percent, Caption: caption, Width: width}
}

const minBarCells = 4

func (p ProgressBar) View() string {
	var caption string
	if p.Caption != "" {
		caption = theme.Hint.Italic(false).Render("  " + p.Caption)
	}

	cells := max(p.Width-lipgloss.Width(caption), minBarCells)
	filled := int(float64(cells) * min(max(p.Percent, 0), 1))

	return lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled)) +
		caption
}
