package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BusyReporter is implemented by screens that must not be left while an
// operation they started is still running.
type BusyReporter interface {
	Busy() bool
}

// NoticeMsg asks the receiving screen to show a one-line status message.
type NoticeMsg struct {
	Text  string
	Error bool
}
