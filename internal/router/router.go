// Package router keeps the stack of screens the shell is showing. Screens
// navigate by returning the messages below from their commands; the router
// consumes those and forwards everything else to the top screen.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the top screen. Then, if set, is delivered to the
// screen underneath once it is active again.
type PopScreenMsg struct {
	Then tea.Msg
}

// ReplaceScreenMsg swaps the top screen without changing the depth.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is a non-empty stack of screens.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen. The root screen is never popped.
func (r *Router) Pop() {
	if r.top() > 0 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
}

// Replace swaps the top screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

func (r *Router) Active() screen.Screen { return r.stack[r.top()] }

func (r *Router) Depth() int { return len(r.stack) }

// Busy reports whether the active screen asked not to be left.
func (r *Router) Busy() bool {
	b, ok := r.Active().(screen.BusyReporter)
	return ok && b.Busy()
}

// Update applies navigation messages and forwards the rest to the active
// screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		if msg.Then == nil {
			return nil
		}
		return r.forward(msg.Then)
	default:
		return r.forward(msg)
	}
}

func (r *Router) forward(msg tea.Msg) tea.Cmd {
	updated, cmd := r.Active().Update(msg)
	r.stack[r.top()] = updated
	return cmd
}

// View renders the active screen into width x height.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
