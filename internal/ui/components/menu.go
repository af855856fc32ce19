package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Marked items carry a bullet, used for
// the entry that is currently in effect.
type MenuItem struct {
	Label  string
	Detail string
	Marked bool
	Action func() tea.Cmd
}

// Menu is a vertical list with a wrapping cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu places the cursor on selected, clamped to the item range.
func NewMenu(items []MenuItem, selected int) Menu {
	return Menu{Items: items, Selected: min(max(selected, 0), max(len(items)-1, 0))}
}

func (m Menu) move(delta int) Menu {
	if n := len(m.Items); n > 0 {
		m.Selected = ((m.Selected+delta)%n + n) % n
	}
	return m
}

// Update moves the cursor on up/down/home/end and runs the selected item's
// Action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		return m.move(-1), nil
	case "down", "j":
		return m.move(1), nil
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter":
		if a := m.Items[m.Selected].Action; a != nil {
			return m, a()
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Marked {
			label += " ●"
		}
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		b.WriteByte('\n')
		if item.Detail != "" {
			b.WriteString(theme.Hint.Render("      " + item.Detail))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
