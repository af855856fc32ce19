package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput. A locked input ignores keystrokes.
type TextInput struct {
	Model  textinput.Model
	locked bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, isKey := msg.(tea.KeyMsg); isKey && t.locked {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Lock stops the input from accepting keystrokes.
func (t *TextInput) Lock() {
	t.locked = true
	t.Model.Blur()
}

// Unlock re-enables the input.
func (t *TextInput) Unlock() tea.Cmd {
	t.locked = false
	return t.Model.Focus()
}

// Locked reports whether the input is locked.
func (t TextInput) Locked() bool {
	return t.locked
}
