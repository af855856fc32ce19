package progression

import (
	"errors"
	"reflect"
	"testing"

	"github.com/abhisek/levelup/internal/skilltree"
)

// diamond builds 1 -> {2, 3} -> 4 with only node 1 available.
func diamond() skilltree.Graph {
	return skilltree.New(
		[]skilltree.Node{
			{ID: "1", Label: "HTML & CSS Foundations", Status: skilltree.StatusAvailable, XPReward: 100, Level: 1, Resources: []skilltree.Resource{}},
			{ID: "2", Label: "JavaScript Basics", Status: skilltree.StatusLocked, XPReward: 200, Level: 2, Resources: []skilltree.Resource{}},
			{ID: "3", Label: "Modern CSS", Status: skilltree.StatusLocked, XPReward: 150, Level: 2, Resources: []skilltree.Resource{}},
			{ID: "4", Label: "React Essentials", Status: skilltree.StatusLocked, XPReward: 500, Level: 3, Resources: []skilltree.Resource{}},
		},
		[]skilltree.Edge{
			{ID: "e1-2", Source: "1", Target: "2"},
			{ID: "e1-3", Source: "1", Target: "3"},
			{ID: "e2-4", Source: "2", Target: "4"},
			{ID: "e3-4", Source: "3", Target: "4"},
		},
	)
}

func status(t *testing.T, g skilltree.Graph, id string) skilltree.Status {
	t.Helper()
	n, ok := g.GetNode(id)
	if !ok {
		t.Fatalf("node %q missing", id)
	}
	return n.Status
}

func TestSetStatus_UnknownNode(t *testing.T) {
	g := diamond()
	_, ev, err := SetStatus(g, "99", skilltree.StatusCompleted)
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
	if ev != nil {
		t.Error("unknown node must not emit an event")
	}
}

func TestSetStatus_LockedRejected(t *testing.T) {
	g := diamond()

	for _, target := range []skilltree.Status{skilltree.StatusAvailable, skilltree.StatusInProgress, skilltree.StatusCompleted} {
		next, ev, err := SetStatus(g, "4", target)
		if !IsInvalidTransition(err) {
			t.Fatalf("%s: expected invalid transition, got %v", target, err)
		}
		if ev != nil {
			t.Errorf("%s: rejected transition emitted an event", target)
		}
		if status(t, next, "4") != skilltree.StatusLocked {
			t.Errorf("%s: locked node changed status", target)
		}
	}
}

func TestSetStatus_CannotRelock(t *testing.T) {
	_, _, err := SetStatus(diamond(), "1", skilltree.StatusLocked)
	if !IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestSetStatus_UnknownStatusRejected(t *testing.T) {
	_, _, err := SetStatus(diamond(), "1", skilltree.Status("DONE"))
	if !IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestSetStatus_InProgressEmitsNothing(t *testing.T) {
	next, ev, err := SetStatus(diamond(), "1", skilltree.StatusInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev != nil {
		t.Error("IN_PROGRESS must not emit an event")
	}
	if status(t, next, "1") != skilltree.StatusInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", status(t, next, "1"))
	}
}

func TestSetStatus_CompletionEmitsOnce(t *testing.T) {
	g, ev, err := SetStatus(diamond(), "1", skilltree.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev == nil || ev.Amount != 100 || ev.NodeID != "1" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	g, ev, err = SetStatus(g, "1", skilltree.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev != nil {
		t.Error("repeat completion emitted an event")
	}

	// Reopening and completing again still does not pay twice.
	g, _, _ = SetStatus(g, "1", skilltree.StatusInProgress)
	_, ev, err = SetStatus(g, "1", skilltree.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev != nil {
		t.Error("re-completion after reopening emitted an event")
	}
}

func TestSetStatus_ZeroRewardStillEmits(t *testing.T) {
	g := skilltree.New([]skilltree.Node{{ID: "a", Status: skilltree.StatusAvailable, Level: 1}}, nil)
	_, ev, err := SetStatus(g, "a", skilltree.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev == nil || ev.Amount != 0 {
		t.Fatalf("expected zero-amount event, got %+v", ev)
	}
}

func TestCascadeUnlock_RequiresAllPrerequisites(t *testing.T) {
	g, _, _ := SetStatus(diamond(), "1", skilltree.StatusCompleted)
	g, unlocked, err := CascadeUnlock(g, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(unlocked, []string{"2", "3"}) {
		t.Errorf("unlocked = %v, want [2 3]", unlocked)
	}

	g, _, _ = SetStatus(g, "2", skilltree.StatusCompleted)
	g, unlocked, _ = CascadeUnlock(g, "2")
	if len(unlocked) != 0 {
		t.Errorf("node 4 unlocked with node 3 incomplete: %v", unlocked)
	}
	if status(t, g, "4") != skilltree.StatusLocked {
		t.Error("node 4 should still be locked")
	}

	g, _, _ = SetStatus(g, "3", skilltree.StatusCompleted)
	g, unlocked, _ = CascadeUnlock(g, "3")
	if !reflect.DeepEqual(unlocked, []string{"4"}) {
		t.Errorf("unlocked = %v, want [4]", unlocked)
	}
	if status(t, g, "4") != skilltree.StatusAvailable {
		t.Error("node 4 should be available")
	}
}

func TestCascadeUnlock_SingleHop(t *testing.T) {
	// a -> b -> c where b's only prerequisite is a and c's only is b.
	// Completing a unlocks b but must not reach c.
	g := skilltree.New(
		[]skilltree.Node{
			{ID: "a", Status: skilltree.StatusAvailable, Level: 1},
			{ID: "b", Status: skilltree.StatusLocked, Level: 2},
			{ID: "c", Status: skilltree.StatusLocked, Level: 3},
		},
		[]skilltree.Edge{{ID: "ab", Source: "a", Target: "b"}, {ID: "bc", Source: "b", Target: "c"}},
	)

	res, err := Apply(g, "a", skilltree.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status(t, res.Graph, "b") != skilltree.StatusAvailable {
		t.Error("b should be available")
	}
	if status(t, res.Graph, "c") != skilltree.StatusLocked {
		t.Error("c must stay locked until b is completed")
	}
}

func TestCascadeUnlock_OnlyTouchesLockedTargets(t *testing.T) {
	g := skilltree.New(
		[]skilltree.Node{
			{ID: "a", Status: skilltree.StatusCompleted, Level: 1},
			{ID: "b", Status: skilltree.StatusInProgress, Level: 2},
		},
		[]skilltree.Edge{{ID: "ab", Source: "a", Target: "b"}},
	)
	g, unlocked, err := CascadeUnlock(g, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("unexpected unlocks: %v", unlocked)
	}
	if status(t, g, "b") != skilltree.StatusInProgress {
		t.Error("in-progress dependent must not be reset")
	}
}

func TestCascadeUnlock_ToleratesSelfLoopsAndDuplicates(t *testing.T) {
	g := skilltree.New(
		[]skilltree.Node{
			{ID: "a", Status: skilltree.StatusCompleted, Level: 1},
			{ID: "b", Status: skilltree.StatusLocked, Level: 2},
		},
		[]skilltree.Edge{
			{ID: "aa", Source: "a", Target: "a"},
			{ID: "ab1", Source: "a", Target: "b"},
			{ID: "ab2", Source: "a", Target: "b"},
		},
	)
	g, unlocked, err := CascadeUnlock(g, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(unlocked, []string{"b"}) {
		t.Errorf("unlocked = %v, want [b]", unlocked)
	}
	if status(t, g, "a") != skilltree.StatusCompleted {
		t.Error("self loop changed the completed node")
	}
}

func TestApply_SelfLoopOnLockedNodeIsNotARequirement(t *testing.T) {
	g := skilltree.New(
		[]skilltree.Node{
			{ID: "p", Status: skilltree.StatusAvailable, XPReward: 100, Level: 1},
			{ID: "x", Status: skilltree.StatusLocked, XPReward: 200, Level: 2},
			{ID: "loner", Status: skilltree.StatusLocked, Level: 2},
		},
		[]skilltree.Edge{
			{ID: "px", Source: "p", Target: "x"},
			{ID: "xx", Source: "x", Target: "x"},
			{ID: "ll", Source: "loner", Target: "loner"},
		},
	)

	res, err := Apply(g, "p", skilltree.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Unlocked, []string{"x"}) {
		t.Errorf("unlocked = %v, want [x]", res.Unlocked)
	}
	if status(t, res.Graph, "x") != skilltree.StatusAvailable {
		t.Errorf("x = %s, want AVAILABLE", status(t, res.Graph, "x"))
	}
	if prerequisitesMet(res.Graph, "loner") {
		t.Error("a node whose only incoming edge is a self-loop has no prerequisites to meet")
	}
}

func TestCascadeUnlock_OrderIndependent(t *testing.T) {
	nodes := []skilltree.Node{
		{ID: "root", Status: skilltree.StatusCompleted, Level: 1},
		{ID: "other", Status: skilltree.StatusAvailable, Level: 1},
		{ID: "x", Status: skilltree.StatusLocked, Level: 2},
		{ID: "y", Status: skilltree.StatusLocked, Level: 2},
		{ID: "z", Status: skilltree.StatusLocked, Level: 2},
	}
	forward := []skilltree.Edge{
		{ID: "1", Source: "root", Target: "x"},
		{ID: "2", Source: "root", Target: "y"},
		{ID: "3", Source: "root", Target: "z"},
		{ID: "4", Source: "other", Target: "y"},
		{ID: "5", Source: "x", Target: "z"},
	}
	reversed := make([]skilltree.Edge, len(forward))
	for i, e := range forward {
		reversed[len(forward)-1-i] = e
	}

	a, _, err := CascadeUnlock(skilltree.New(nodes, forward), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _, err := CascadeUnlock(skilltree.New(nodes, reversed), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"x", "y", "z"} {
		if status(t, a, id) != status(t, b, id) {
			t.Errorf("%s: %s vs %s depending on edge order", id, status(t, a, id), status(t, b, id))
		}
	}
	if status(t, a, "x") != skilltree.StatusAvailable {
		t.Error("x should unlock")
	}
	if status(t, a, "y") != skilltree.StatusLocked {
		t.Error("y waits on other")
	}
	if status(t, a, "z") != skilltree.StatusLocked {
		t.Error("z waits on x, which was locked in the input snapshot")
	}
}

func TestCascadeUnlock_UnknownNode(t *testing.T) {
	_, _, err := CascadeUnlock(diamond(), "missing")
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}

func TestApply_LockIntegrity(t *testing.T) {
	// Drive every node through every status and check that no LOCKED node
	// ever leaves LOCKED except into AVAILABLE via a cascade.
	g := diamond()
	steps := []struct {
		id     string
		status skilltree.Status
	}{
		{"4", skilltree.StatusInProgress},
		{"2", skilltree.StatusCompleted},
		{"1", skilltree.StatusInProgress},
		{"1", skilltree.StatusCompleted},
		{"4", skilltree.StatusCompleted},
		{"2", skilltree.StatusCompleted},
		{"3", skilltree.StatusCompleted},
	}

	for _, s := range steps {
		before := g
		res, err := Apply(g, s.id, s.status)
		if err != nil && !IsInvalidTransition(err) {
			t.Fatalf("%s -> %s: unexpected error %v", s.id, s.status, err)
		}
		for _, n := range before.Nodes() {
			if n.Status != skilltree.StatusLocked {
				continue
			}
			after := status(t, res.Graph, n.ID)
			if after != skilltree.StatusLocked && after != skilltree.StatusAvailable {
				t.Errorf("%s: locked node %s moved to %s", s.id, n.ID, after)
			}
		}
		g = res.Graph
	}

	if status(t, g, "4") != skilltree.StatusAvailable {
		t.Errorf("node 4 = %s, want AVAILABLE", status(t, g, "4"))
	}
}

func TestApply_ErrorReturnsInputGraph(t *testing.T) {
	g := diamond()
	res, err := Apply(g, "4", skilltree.StatusCompleted)
	if !IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if !reflect.DeepEqual(res.Graph.Nodes(), g.Nodes()) {
		t.Error("graph changed after rejected transition")
	}
}
