package canvas

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/profile"
	"github.com/abhisek/levelup/internal/session"
	"github.com/abhisek/levelup/internal/skilltree"
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/theme"
)

// renderPanel draws the profile card and the selected node's details.
func renderPanel(sess *session.Session, width, height int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(renderProfile(sess.Profile(), inner))
	b.WriteString("\n")
	b.WriteString(renderLegend(inner))
	b.WriteString("\n\n")

	if n, ok := sess.Selected(); ok {
		b.WriteString(renderDetail(sess.Graph(), n, inner))
	} else {
		b.WriteString(theme.Hint.Render("Select a skill to see its details."))
	}

	return theme.Panel.Width(width).Height(height).Render(b.String())
}

func renderProfile(p profile.Profile, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Level %d", p.Level)))
	b.WriteString("\n")
	b.WriteString(dim.Render("Total XP   ") + val.Render(fmt.Sprintf("%d", p.TotalXP)) + "\n")
	b.WriteString(dim.Render("Completed  ") + val.Render(fmt.Sprintf("%d", p.CompletedSkills)) + "\n")
	b.WriteString(dim.Render("Streak     ") + val.Render(fmt.Sprintf("%d day", p.CurrentStreak)) + "\n")
	b.WriteString(dim.Render("Next level") + "\n")

	bar := components.NewProgressBar(
		p.LevelFraction(),
		fmt.Sprintf("%d / %d XP", p.LevelProgress(), profile.XPPerLevel),
		width,
	)
	b.WriteString(bar.View())
	return b.String()
}

// renderLegend names each status in the color its nodes are drawn with.
func renderLegend(width int) string {
	labels := make([]string, 0, len(skilltree.AllStatuses()))
	for _, st := range skilltree.AllStatuses() {
		labels = append(labels, theme.StatusColor(st).Render(st.Label()))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(labels, " "))
}

func renderDetail(g skilltree.Graph, n skilltree.Node, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.StatusColor(n.Status).Bold(true).Render(n.Status.Icon() + " " + n.Label))
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("%s · Tier %d", n.Status.Label(), n.Level)))
	b.WriteString("\n\n")

	if n.Description != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(n.Description))
		b.WriteString("\n\n")
	}

	if prereqs := g.Prerequisites(n.ID); len(prereqs) > 0 {
		b.WriteString(theme.Heading.Render("Requires"))
		b.WriteString("\n")
		for _, p := range prereqs {
			b.WriteString(theme.StatusColor(p.Status).Render(fmt.Sprintf("%s %s", p.Status.Icon(), p.Label)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if n.Status == skilltree.StatusLocked {
		b.WriteString(theme.Hint.Render(LockedHint))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Heading.Render("Resources"))
	b.WriteString("\n")
	if len(n.Resources) == 0 {
		b.WriteString(dim.Render("No resources listed for this node."))
		b.WriteString("\n")
	}
	for _, r := range n.Resources {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%s %s", resourceIcon(r.Type), r.Title)))
		b.WriteString("\n")
		b.WriteString(dim.Width(width).Render("  " + r.URL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(
		fmt.Sprintf("Bounty Reward +%d XP", n.XPReward)))
	b.WriteString("\n\n")

	b.WriteString(components.ButtonRow(
		components.NewButton("p", "Start", actionEnabled(n.Status, skilltree.StatusInProgress)),
		components.NewButton("c", "Complete", actionEnabled(n.Status, skilltree.StatusCompleted)),
	))
	return b.String()
}

func resourceIcon(t skilltree.ResourceType) string {
	switch t {
	case skilltree.ResourceVideo:
		return "▶"
	case skilltree.ResourceCourse:
		return "◆"
	case skilltree.ResourceBook:
		return "■"
	default:
		return "≡"
	}
}
