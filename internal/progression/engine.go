// Package progression applies status transitions to a skill tree and
// unlocks dependents once their prerequisites are complete.
//
// Every function here is pure: it takes a graph snapshot and returns a new
// one. Callers own the mutable reference.
package progression

import (
	"errors"
	"fmt"

	"github.com/abhisek/levelup/internal/skilltree"
)

// ErrUnknownNode is returned when a transition names a node that is not in
// the graph. It is the same sentinel the graph model uses.
var ErrUnknownNode = skilltree.ErrUnknownNode

// ErrInvalidTransition is returned when a transition is not allowed. The
// graph returned alongside it is always the unchanged input.
var ErrInvalidTransition = errors.New("invalid transition")

// XPEvent records experience earned by completing a node for the first time.
type XPEvent struct {
	NodeID string
	Amount int
}

// IsInvalidTransition reports whether err is a rejected transition, which
// callers usually surface as a hint rather than an error.
func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

// SetStatus moves a node to newStatus.
//
// LOCKED nodes are not actionable and a node can never be moved back into
// LOCKED. Completing a node that has never been rewarded emits an XPEvent
// and marks it rewarded; later completions emit nothing.
func SetStatus(g skilltree.Graph, nodeID string, newStatus skilltree.Status) (skilltree.Graph, *XPEvent, error) {
	node, ok := g.GetNode(nodeID)
	if !ok {
		return g, nil, fmt.Errorf("set status of %q: %w", nodeID, ErrUnknownNode)
	}

	if node.Status == skilltree.StatusLocked {
		return g, nil, fmt.Errorf("node %q is locked: %w", nodeID, ErrInvalidTransition)
	}
	if !newStatus.Valid() || newStatus == skilltree.StatusLocked {
		return g, nil, fmt.Errorf("cannot move node %q to %q: %w", nodeID, newStatus, ErrInvalidTransition)
	}

	var event *XPEvent
	if newStatus == skilltree.StatusCompleted && !node.Rewarded {
		event = &XPEvent{NodeID: nodeID, Amount: node.XPReward}
	}

	next, err := g.ReplaceNode(nodeID, func(n skilltree.Node) skilltree.Node {
		n.Status = newStatus
		if event != nil {
			n.Rewarded = true
		}
		return n
	})
	if err != nil {
		return g, nil, err
	}
	return next, event, nil
}

// CascadeUnlock promotes each LOCKED direct dependent of completedID to
// AVAILABLE when every one of its prerequisites is COMPLETED. It returns the
// new graph and the ids it unlocked, in edge order.
//
// Only one hop is evaluated. A node unlocked here does not unlock anything
// further until it is completed itself. Every decision reads the input
// snapshot, so the order targets are visited in cannot change the result.
func CascadeUnlock(g skilltree.Graph, completedID string) (skilltree.Graph, []string, error) {
	if _, ok := g.GetNode(completedID); !ok {
		return g, nil, fmt.Errorf("cascade from %q: %w", completedID, ErrUnknownNode)
	}

	var unlock []string
	seen := make(map[string]bool)
	for _, e := range g.EdgesFrom(completedID) {
		if e.Target == completedID || seen[e.Target] {
			continue
		}
		seen[e.Target] = true

		if prerequisitesMet(g, e.Target) {
			unlock = append(unlock, e.Target)
		}
	}

	next := g
	for _, id := range unlock {
		var err error
		next, err = next.ReplaceNode(id, func(n skilltree.Node) skilltree.Node {
			n.Status = skilltree.StatusAvailable
			return n
		})
		if err != nil {
			return g, nil, err
		}
	}
	return next, unlock, nil
}

// prerequisitesMet reports whether id is LOCKED and every node it requires
// is COMPLETED. Self-loops are not requirements, and a node with no other
// incoming edge is never unlocked this way.
func prerequisitesMet(g skilltree.Graph, id string) bool {
	target, ok := g.GetNode(id)
	if !ok || target.Status != skilltree.StatusLocked {
		return false
	}

	required := 0
	for _, in := range g.EdgesTo(id) {
		if in.Source == id {
			continue
		}
		required++
		src, ok := g.GetNode(in.Source)
		if !ok || src.Status != skilltree.StatusCompleted {
			return false
		}
	}
	return required > 0
}
