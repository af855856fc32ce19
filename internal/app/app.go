package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/roadmapgen"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/screens/canvas"
	"github.com/abhisek/levelup/internal/session"
	"github.com/abhisek/levelup/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the screen stack and
// draws the shared header and footer around the active screen.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// newAppModel creates a new AppModel showing the canvas for sess.
func newAppModel(ctx context.Context, sess *session.Session, gen roadmapgen.Generator) AppModel {
	return AppModel{
		router: router.New(canvas.New(ctx, sess, gen)),
		sess:   sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Busy() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(layout.RenderFrame(m.header(), m.footer(), m.width, m.height, m.router.View))
	}
	return v
}

func (m AppModel) header() string {
	p := m.sess.Profile()
	return layout.RenderHeader(layout.HeaderInfo{
		Title:         m.router.Active().Title(),
		Level:         p.Level,
		TotalXP:       p.TotalXP,
		LevelFraction: p.LevelFraction(),
		Busy:          m.sess.Busy(),
	}, m.width)
}

// footer shows the active screen's key hints, or Back and Quit.
func (m AppModel) footer() string {
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	return layout.RenderFooter(hints, m.width)
}

// Run starts the TUI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, sess *session.Session, gen roadmapgen.Generator) error {
	p := tea.NewProgram(newAppModel(ctx, sess, gen), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
