package skilltree

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownNode is returned when an operation references a node id that
// is not part of the graph.
var ErrUnknownNode = errors.New("unknown node")

// ErrDuplicateEdge is returned by AddEdge when source already leads to
// target.
var ErrDuplicateEdge = errors.New("edge already exists")

// Graph is an immutable snapshot of nodes and edges. Operations that
// change a node return a new Graph; the receiver is never modified.
type Graph struct {
	nodes    []Node
	byID     map[string]int
	edges    []Edge
	outgoing map[string][]int
	incoming map[string][]int
}

// New builds a Graph from nodes and edges, preserving insertion order.
// Validation is the caller's job; roadmap.Import is the checked entry point.
func New(nodes []Node, edges []Edge) Graph {
	g := Graph{
		nodes:    make([]Node, len(nodes)),
		byID:     make(map[string]int, len(nodes)),
		edges:    make([]Edge, len(edges)),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
	}

	for i, n := range nodes {
		g.nodes[i] = n.clone()
		g.byID[n.ID] = i
	}

	copy(g.edges, edges)
	for i, e := range g.edges {
		g.outgoing[e.Source] = append(g.outgoing[e.Source], i)
		g.incoming[e.Target] = append(g.incoming[e.Target], i)
	}

	return g
}

// Len returns the number of nodes.
func (g Graph) Len() int {
	return len(g.nodes)
}

// GetNode returns a copy of the node with the given id.
func (g Graph) GetNode(id string) (Node, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i].clone(), true
}

// Nodes returns copies of all nodes in insertion order.
func (g Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.clone()
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (g Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgesFrom returns the edges whose source is id.
func (g Graph) EdgesFrom(id string) []Edge {
	return g.collect(g.outgoing[id])
}

// EdgesTo returns the edges whose target is id.
func (g Graph) EdgesTo(id string) []Edge {
	return g.collect(g.incoming[id])
}

func (g Graph) collect(idx []int) []Edge {
	out := make([]Edge, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.edges[i])
	}
	return out
}

// ReplaceNode returns a new Graph in which the node with the given id has
// been replaced by fn's result. The node id cannot be changed.
func (g Graph) ReplaceNode(id string, fn func(Node) Node) (Graph, error) {
	i, ok := g.byID[id]
	if !ok {
		return g, fmt.Errorf("replace %q: %w", id, ErrUnknownNode)
	}

	next := g
	next.nodes = make([]Node, len(g.nodes))
	copy(next.nodes, g.nodes)

	updated := fn(g.nodes[i].clone())
	updated.ID = id
	next.nodes[i] = updated.clone()

	// Edge indices are never mutated after New, so they are shared.
	return next, nil
}

// AddEdge returns a new Graph with an edge making target require source.
// Node statuses are left as they are. Both endpoints must exist, and a
// second edge between the same pair is rejected with ErrDuplicateEdge.
func (g Graph) AddEdge(source, target string) (Graph, Edge, error) {
	for _, id := range []string{source, target} {
		if _, ok := g.byID[id]; !ok {
			return g, Edge{}, fmt.Errorf("connect %q to %q: %w: %s", source, target, ErrUnknownNode, id)
		}
	}

	taken := make(map[string]bool, len(g.edges))
	for _, e := range g.edges {
		if e.Source == source && e.Target == target {
			return g, e, fmt.Errorf("connect %q to %q: %w", source, target, ErrDuplicateEdge)
		}
		taken[e.ID] = true
	}

	e := Edge{ID: "e" + source + "-" + target, Source: source, Target: target}
	for n := 2; taken[e.ID]; n++ {
		e.ID = fmt.Sprintf("e%s-%s-%d", source, target, n)
	}

	edges := make([]Edge, len(g.edges), len(g.edges)+1)
	copy(edges, g.edges)
	return New(g.nodes, append(edges, e)), e, nil
}

// Prerequisites returns the distinct nodes that id requires, in edge order.
// Self loops are ignored.
func (g Graph) Prerequisites(id string) []Node {
	var out []Node
	seen := make(map[string]bool)
	for _, e := range g.EdgesTo(id) {
		if e.Source == id || seen[e.Source] {
			continue
		}
		seen[e.Source] = true
		if n, ok := g.GetNode(e.Source); ok {
			out = append(out, n)
		}
	}
	return out
}

// Dependents returns the distinct nodes that require id, in edge order.
// Self loops are ignored.
func (g Graph) Dependents(id string) []Node {
	var out []Node
	seen := make(map[string]bool)
	for _, e := range g.EdgesFrom(id) {
		if e.Target == id || seen[e.Target] {
			continue
		}
		seen[e.Target] = true
		if n, ok := g.GetNode(e.Target); ok {
			out = append(out, n)
		}
	}
	return out
}

// CountByStatus returns how many nodes are in each status.
func (g Graph) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, n := range g.nodes {
		counts[n.Status]++
	}
	return counts
}

// Tier groups the nodes that share a level.
type Tier struct {
	Level int
	Nodes []Node
}

// Tiers groups nodes by level in ascending order. Within a tier, nodes are
// ordered left to right by position, falling back to insertion order.
func (g Graph) Tiers() []Tier {
	byLevel := make(map[int][]Node)
	var levels []int
	for _, n := range g.nodes {
		if _, ok := byLevel[n.Level]; !ok {
			levels = append(levels, n.Level)
		}
		byLevel[n.Level] = append(byLevel[n.Level], n.clone())
	}
	sort.Ints(levels)

	tiers := make([]Tier, 0, len(levels))
	for _, lvl := range levels {
		nodes := byLevel[lvl]
		sort.SliceStable(nodes, func(i, j int) bool {
			if nodes[i].Position.Y != nodes[j].Position.Y {
				return nodes[i].Position.Y < nodes[j].Position.Y
			}
			return nodes[i].Position.X < nodes[j].Position.X
		})
		tiers = append(tiers, Tier{Level: lvl, Nodes: nodes})
	}
	return tiers
}
