// Package generate hosts the career form that asks the roadmap generator
// for a new skill tree.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/llm"
	"github.com/abhisek/levelup/internal/roadmap"
	"github.com/abhisek/levelup/internal/roadmapgen"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/session"
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

// NoProviderMessage is shown when no LLM provider is configured.
const NoProviderMessage = "No LLM provider configured. Set LEVELUP_LLM_PROVIDER or an API key such as GEMINI_API_KEY."

// generatedMsg carries the generator result back to the update loop.
type generatedMsg struct {
	Candidate *roadmap.Candidate
	Err       error
}

// GenerateScreen collects a career and runs one generation at a time.
type GenerateScreen struct {
	ctx     context.Context
	sess    *session.Session
	gen     roadmapgen.Generator
	input   components.TextInput
	spinner spinner.Model
	career  string
	errMsg  string
}

var (
	_ screen.Screen          = (*GenerateScreen)(nil)
	_ screen.KeyHintProvider = (*GenerateScreen)(nil)
	_ screen.BusyReporter    = (*GenerateScreen)(nil)
)

// New creates the form. gen may be nil, in which case submitting explains
// how to configure a provider.
func New(ctx context.Context, sess *session.Session, gen roadmapgen.Generator) *GenerateScreen {
	return &GenerateScreen{
		ctx:   ctx,
		sess:  sess,
		gen:   gen,
		input: components.NewTextInput("e.g. Chef, Game Developer, Data Engineer", 80),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (s *GenerateScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GenerateScreen) Title() string {
	return "Generate Roadmap"
}

// Busy reports whether a generation is in flight.
func (s *GenerateScreen) Busy() bool {
	return s.sess.Busy()
}

// KeyHints returns the key binding hints for the footer.
func (s *GenerateScreen) KeyHints() []layout.KeyHint {
	if s.Busy() {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return s.handleGenerated(msg)

	case spinner.TickMsg:
		if !s.Busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.Busy() {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *GenerateScreen) submit() tea.Cmd {
	career := strings.TrimSpace(s.input.Value())
	if career == "" {
		s.errMsg = "Enter a career to generate a roadmap."
		return nil
	}
	if s.gen == nil {
		s.errMsg = NoProviderMessage
		return nil
	}
	if err := s.sess.BeginGeneration(career); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.career = career
	s.errMsg = ""
	s.input.Lock()

	ctx, gen := s.ctx, s.gen
	return tea.Batch(
		s.spinner.Tick,
		func() tea.Msg {
			c, err := gen.Generate(ctx, career)
			return generatedMsg{Candidate: c, Err: err}
		},
	)
}

func (s *GenerateScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	err := s.sess.FinishGeneration(msg.Candidate, msg.Err)
	if err != nil {
		s.errMsg = describeError(err)
		return s, s.input.Unlock()
	}

	notice := screen.NoticeMsg{Text: fmt.Sprintf("Loaded roadmap: %s", s.sess.Name())}
	return s, func() tea.Msg { return router.PopScreenMsg{Then: notice} }
}

// describeError turns a generation failure into the message shown on the
// form.
func describeError(err error) string {
	switch {
	case errors.Is(err, roadmap.ErrMalformedRoadmap):
		first, _, _ := strings.Cut(err.Error(), "\n")
		return "The generated roadmap was invalid (" + first + "). Please try again."
	case errors.Is(err, roadmapgen.ErrGenerationFailed):
		if why := llm.Explain(err); why != "" {
			return roadmapgen.ErrGenerationFailed.Error() + ". " + why
		}
		return roadmapgen.ErrGenerationFailed.Error()
	default:
		return err.Error()
	}
}

// ErrorMessage returns the error shown on the form, if any.
func (s *GenerateScreen) ErrorMessage() string {
	return s.errMsg
}

func (s *GenerateScreen) View(width, height int) string {
	formWidth := width - 8
	if formWidth > 70 {
		formWidth = 70
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Generate a career roadmap"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Describe the career and an AI will draft a skill tree for it."))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch {
	case s.Busy():
		b.WriteString(s.spinner.View() + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("Generating a roadmap for %q...", s.career)))
	case s.errMsg != "":
		b.WriteString(theme.ErrorText.Width(formWidth).Render(s.errMsg))
	default:
		b.WriteString(theme.Hint.Render("Press Enter to generate. The current tree is replaced only on success."))
	}

	card := theme.Card.Width(formWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
