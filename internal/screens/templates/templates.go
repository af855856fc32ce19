// Package templates lets the user swap the tree for a built-in roadmap.
package templates

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/session"
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

// TemplatesScreen lists the template library.
type TemplatesScreen struct {
	sess   *session.Session
	menu   components.Menu
	errMsg string
}

var (
	_ screen.Screen          = (*TemplatesScreen)(nil)
	_ screen.KeyHintProvider = (*TemplatesScreen)(nil)
)

// New creates the picker with the cursor on the active template.
func New(sess *session.Session) *TemplatesScreen {
	s := &TemplatesScreen{sess: sess}

	var items []components.MenuItem
	active := 0
	for i, t := range sess.Templates().All() {
		id := t.ID
		if id == sess.TemplateID() {
			active = i
		}
		items = append(items, components.MenuItem{
			Label:  t.Name,
			Detail: t.Description,
			Marked: id == sess.TemplateID(),
			Action: func() tea.Cmd { return s.load(id) },
		})
	}
	s.menu = components.NewMenu(items, active)
	return s
}

func (s *TemplatesScreen) Init() tea.Cmd { return nil }
func (s *TemplatesScreen) Title() string { return "Templates" }

// KeyHints returns the key binding hints for the footer.
func (s *TemplatesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Load"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TemplatesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TemplatesScreen) load(id string) tea.Cmd {
	if err := s.sess.LoadTemplate(id); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	notice := screen.NoticeMsg{Text: fmt.Sprintf("Loaded template: %s", s.sess.Name())}
	return func() tea.Msg { return router.PopScreenMsg{Then: notice} }
}

func (s *TemplatesScreen) View(width, height int) string {
	body := theme.Heading.Render("Choose a roadmap") + "\n" +
		theme.Hint.Render("Loading a template resets your XP and progress.") + "\n\n" +
		s.menu.View()
	if s.errMsg != "" {
		body += "\n" + theme.ErrorText.Render(s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(body))
}
