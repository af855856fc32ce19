// Package session holds the mutable state of one editing session: the
// current skill tree, the profile earned on it, the selected node and the
// generation busy flag. The engines it drives are pure; this is the only
// place their results are stored.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/levelup/internal/profile"
	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/roadmap"
	"github.com/abhisek/levelup/internal/roadmapgen"
	"github.com/abhisek/levelup/internal/skilltree"
	"github.com/abhisek/levelup/internal/templates"
)

// ErrBusy is returned when a generation is requested while one is in flight.
var ErrBusy = errors.New("a roadmap is already being generated")

// Outcome describes the visible effect of a status change.
type Outcome struct {
	XPGained  int
	LevelUp   bool
	Unlocked  []string
	Completed bool
}

// Session is not safe for concurrent use. The TUI update loop is its only
// writer.
type Session struct {
	id      uuid.UUID
	lib     *templates.Library
	logger  *zap.Logger
	graph   skilltree.Graph
	profile profile.Profile

	name        string
	description string
	templateID  string

	selected     string
	hasSelection bool

	busy bool
}

// New creates a session showing the library's default template.
func New(lib *templates.Library, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	s := &Session{
		id:     id,
		lib:    lib,
		logger: logger.Named("session").With(zap.String("session_id", id.String())),
	}
	if err := s.LoadTemplate(lib.Default().ID); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Graph returns the current skill tree.
func (s *Session) Graph() skilltree.Graph { return s.graph }

// Profile returns the profile earned on the current tree.
func (s *Session) Profile() profile.Profile { return s.profile }

// Name returns the name of the loaded roadmap.
func (s *Session) Name() string { return s.name }

// Description returns the description of the loaded roadmap.
func (s *Session) Description() string { return s.description }

// TemplateID returns the id of the loaded template, or "" when the tree was
// generated.
func (s *Session) TemplateID() string { return s.templateID }

// Templates returns the library the session loads templates from.
func (s *Session) Templates() *templates.Library { return s.lib }

// LoadTemplate replaces the tree with a template from the library.
func (s *Session) LoadTemplate(id string) error {
	t, err := s.lib.Get(id)
	if err != nil {
		return err
	}
	if err := s.load(t.Candidate); err != nil {
		return fmt.Errorf("template %s: %w", id, err)
	}
	s.templateID = t.ID
	s.logger.Info("template loaded", zap.String("template", t.ID), zap.Int("nodes", s.graph.Len()))
	return nil
}

// Load replaces the tree with an imported candidate. On failure nothing
// changes.
func (s *Session) Load(c roadmap.Candidate) error {
	if err := s.load(c); err != nil {
		s.logger.Warn("roadmap rejected", zap.String("roadmap", c.Name), zap.Error(err))
		return err
	}
	s.templateID = ""
	s.logger.Info("roadmap loaded", zap.String("roadmap", c.Name), zap.Int("nodes", s.graph.Len()))
	return nil
}

func (s *Session) load(c roadmap.Candidate) error {
	g, p, err := roadmap.Import(c)
	if err != nil {
		return err
	}
	s.graph = g
	s.profile = p
	s.name = c.Name
	s.description = c.Description
	s.ClearSelection()
	return nil
}

// Select makes id the selected node.
func (s *Session) Select(id string) error {
	if _, ok := s.graph.GetNode(id); !ok {
		return fmt.Errorf("%w: %s", skilltree.ErrUnknownNode, id)
	}
	s.selected = id
	s.hasSelection = true
	return nil
}

// ClearSelection deselects the selected node, if any.
func (s *Session) ClearSelection() {
	s.selected = ""
	s.hasSelection = false
}

// Selected returns the selected node.
func (s *Session) Selected() (skilltree.Node, bool) {
	if !s.hasSelection {
		return skilltree.Node{}, false
	}
	return s.graph.GetNode(s.selected)
}

// SetStatus moves a node to status, folds any reward into the profile and
// unlocks dependents when the node is completed. A rejected request leaves
// the session unchanged.
func (s *Session) SetStatus(id string, status skilltree.Status) (Outcome, error) {
	before, _ := s.graph.GetNode(id)

	res, err := progression.Apply(s.graph, id, status)
	if err != nil {
		s.logger.Info("status change rejected",
			zap.String("node", id),
			zap.String("from", string(before.Status)),
			zap.String("to", string(status)),
			zap.Error(err))
		return Outcome{}, err
	}

	out := Outcome{
		Unlocked:  res.Unlocked,
		Completed: status == skilltree.StatusCompleted,
	}
	s.graph = res.Graph
	if res.XPEvent != nil {
		prevLevel := s.profile.Level
		s.profile = profile.ApplyXPEvent(s.profile, *res.XPEvent)
		out.XPGained = res.XPEvent.Amount
		out.LevelUp = s.profile.Level > prevLevel
	}

	s.logger.Info("status changed",
		zap.String("node", id),
		zap.String("from", string(before.Status)),
		zap.String("to", string(status)),
		zap.Int("xp_gained", out.XPGained),
		zap.Int("total_xp", s.profile.TotalXP),
		zap.Strings("unlocked", out.Unlocked))
	return out, nil
}

// Connect adds an edge so that target requires source. Statuses are not
// recomputed: an AVAILABLE target stays available until the next import.
func (s *Session) Connect(source, target string) (skilltree.Edge, error) {
	next, e, err := s.graph.AddEdge(source, target)
	if err != nil {
		s.logger.Info("connect rejected",
			zap.String("source", source),
			zap.String("target", target),
			zap.Error(err))
		return skilltree.Edge{}, err
	}
	s.graph = next
	s.logger.Info("connected",
		zap.String("edge", e.ID),
		zap.String("source", source),
		zap.String("target", target))
	return e, nil
}

// Busy reports whether a generation is in flight.
func (s *Session) Busy() bool { return s.busy }

// BeginGeneration marks a generation as in flight.
func (s *Session) BeginGeneration(career string) error {
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	s.logger.Info("generation started", zap.String("career", career))
	return nil
}

// FinishGeneration clears the busy flag and, when genErr is nil, loads c.
// Any error leaves the tree and profile as they were.
func (s *Session) FinishGeneration(c *roadmap.Candidate, genErr error) error {
	s.busy = false
	if genErr != nil {
		s.logger.Warn("generation failed", zap.Error(genErr))
		return genErr
	}
	if c == nil {
		err := fmt.Errorf("%w: generator returned no roadmap", roadmapgen.ErrGenerationFailed)
		s.logger.Warn("generation failed", zap.Error(err))
		return err
	}
	return s.Load(*c)
}
