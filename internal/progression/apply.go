package progression

import "github.com/abhisek/levelup/internal/skilltree"

// Result is the outcome of a user-driven transition.
type Result struct {
	Graph    skilltree.Graph
	XPEvent  *XPEvent
	Unlocked []string
}

// Apply runs SetStatus and, when the node ends up COMPLETED, runs the
// cascade against the resulting graph before returning. On error the
// result carries the unchanged input graph.
func Apply(g skilltree.Graph, nodeID string, newStatus skilltree.Status) (Result, error) {
	next, event, err := SetStatus(g, nodeID, newStatus)
	if err != nil {
		return Result{Graph: g}, err
	}

	res := Result{Graph: next, XPEvent: event}
	if newStatus != skilltree.StatusCompleted {
		return res, nil
	}

	cascaded, unlocked, err := CascadeUnlock(next, nodeID)
	if err != nil {
		return Result{Graph: g}, err
	}
	res.Graph = cascaded
	res.Unlocked = unlocked
	return res, nil
}
