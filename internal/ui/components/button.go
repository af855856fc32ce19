package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/ui/theme"
)

// Button is an action bound to a key. A disabled button renders dimmed and
// callers must not dispatch its action.
type Button struct {
	Key     string
	Label   string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(key, label string, enabled bool) Button {
	return Button{Key: key, Label: label, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	text := "[" + b.Key + "] " + b.Label
	if b.Enabled {
		return theme.ButtonActive.Render(text)
	}
	return theme.ButtonInactive.Strikethrough(true).Render(text)
}

// ButtonRow renders buttons side by side.
func ButtonRow(buttons ...Button) string {
	parts := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
