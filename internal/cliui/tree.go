package cliui

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/levelup/internal/skilltree"
	"github.com/abhisek/levelup/internal/templates"
)

// PrintTree writes g tier by tier with prerequisites and resources.
func PrintTree(w io.Writer, name, description string, g skilltree.Graph) {
	fmt.Fprintln(w, BoldCyan(name))
	if description != "" {
		fmt.Fprintln(w, Dim(description))
	}

	total := 0
	for _, n := range g.Nodes() {
		total += n.XPReward
	}
	fmt.Fprintf(w, "%s skills, %s XP on offer\n", Bold(fmt.Sprint(g.Len())), Bold(fmt.Sprint(total)))

	counts := g.CountByStatus()
	var parts []string
	for _, s := range skilltree.AllStatuses() {
		if counts[s] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[s], strings.ToLower(s.Label())))
		}
	}
	fmt.Fprintln(w, Dim(strings.Join(parts, ", ")))

	for _, tier := range g.Tiers() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, BoldYellow(fmt.Sprintf("Tier %d", tier.Level)))
		for _, n := range tier.Nodes {
			fmt.Fprintf(w, "  %s %s  %s  %s\n",
				n.Status.Icon(), Bold(n.Label), StatusText(n.Status), Dim(fmt.Sprintf("+%d XP", n.XPReward)))
			if n.Description != "" {
				fmt.Fprintf(w, "     %s\n", n.Description)
			}
			if prereqs := g.Prerequisites(n.ID); len(prereqs) > 0 {
				labels := make([]string, len(prereqs))
				for i, p := range prereqs {
					labels[i] = p.Label
				}
				fmt.Fprintf(w, "     %s %s\n", Dim("requires"), strings.Join(labels, ", "))
			}
			for _, r := range n.Resources {
				fmt.Fprintf(w, "     %s %s %s\n", Dim("["+string(r.Type)+"]"), r.Title, Dim(r.URL))
			}
		}
	}
}

// PrintTemplates writes a one-line summary per template and marks activeID.
func PrintTemplates(w io.Writer, list []templates.Template, activeID string) {
	for _, t := range list {
		marker := " "
		if t.ID == activeID {
			marker = Green("●")
		}
		fmt.Fprintf(w, "%s %-16s %s  %s\n", marker, Cyan(t.ID), Bold(t.Name), Dim(fmt.Sprintf("(%d skills)", len(t.Candidate.Nodes))))
		if t.Description != "" {
			fmt.Fprintf(w, "  %-16s %s\n", "", Dim(t.Description))
		}
	}
}
