// Package cliui renders skill trees and listings for the non-interactive
// commands.
package cliui

import (
	"github.com/fatih/color"

	"github.com/abhisek/levelup/internal/skilltree"
)

// Sprint color functions for building styled strings.
var (
	Bold       = color.New(color.Bold).SprintFunc()
	Dim        = color.New(color.Faint).SprintFunc()
	Cyan       = color.New(color.FgCyan).SprintFunc()
	Green      = color.New(color.FgGreen).SprintFunc()
	Red        = color.New(color.FgRed).SprintFunc()
	Yellow     = color.New(color.FgYellow).SprintFunc()
	BoldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
)

// StatusText returns a colored status label.
func StatusText(s skilltree.Status) string {
	switch s {
	case skilltree.StatusCompleted:
		return Green(s.Label())
	case skilltree.StatusInProgress:
		return Yellow(s.Label())
	case skilltree.StatusAvailable:
		return Cyan(s.Label())
	default:
		return Dim(s.Label())
	}
}

// OKMark returns a colored check or cross.
func OKMark(ok bool) string {
	if ok {
		return Green("✓")
	}
	return Red("✗")
}
