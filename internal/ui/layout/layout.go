// Package layout draws the frame around every screen: a header with the
// player's level, the screen body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactWidth is the width below which footer hints drop their
	// descriptions.
	CompactWidth = 100

	meterCells = 10
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderInfo is what the header shows about the current session.
type HeaderInfo struct {
	Title   string
	Level   int
	TotalXP int
	// LevelFraction is progress towards the next level, in [0, 1].
	LevelFraction float64
	// Busy marks a generation in flight.
	Busy bool
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the title bar: app name on the left, screen title
// centred, level meter and XP on the right.
func RenderHeader(info HeaderInfo, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  LevelUp")
	if info.Busy {
		left += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  generating…")
	}

	center := lipgloss.NewStyle().Foreground(theme.Text).Render(info.Title)

	right := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("Lv %d", info.Level)) +
		" " + levelMeter(info.LevelFraction) + " " +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("%d XP", info.TotalXP))

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// levelMeter draws fraction as a fixed-width row of cells.
func levelMeter(fraction float64) string {
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * meterCells)
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Repeat("▰", filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Repeat("▱", meterCells-filled))
}

// RenderFooter renders the key hints. Below CompactWidth only the keys are
// shown.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := keyStyle.Render(h.Key)
		if width >= CompactWidth {
			part += " " + descStyle.Render(h.Description)
		}
		parts = append(parts, part)
	}

	return bar(width).Render("  " + strings.Join(parts, "   "))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderFrame stacks header, body and footer into a width x height frame.
// body is called with the space left between header and footer.
func RenderFrame(header, footer string, width, height int, body func(width, height int) string) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(body(width, bodyHeight))

	return header + "\n" + content + "\n" + footer
}
