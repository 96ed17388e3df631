// Package graph dependency graph between named variables.
//
// Edges point from a dependency to the variable that needs it, so a topological
// order evaluates every input before its consumers.
package graph

import (
	"fmt"
	"sort"

	"outflow/types"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph dependencies between named variables.
type Graph struct {
	g     *simple.DirectedGraph
	names []string         // node ID -> name
	index map[string]int64 // name -> node ID
	self  []string         // variables that depend on themselves
}

// New creates a graph with one node per name. Node order is the tie-break order of Sort.
func New(names []string) (*Graph, error) {
	graph := &Graph{
		g:     simple.NewDirectedGraph(),
		names: make([]string, 0, len(names)),
		index: make(map[string]int64, len(names)),
	}
	for _, name := range names {
		if _, ok := graph.index[name]; ok {
			return nil, types.Configf("duplicate variable %q", name)
		}
		id := int64(len(graph.names))
		graph.index[name] = id
		graph.names = append(graph.names, name)
		graph.g.AddNode(simple.Node(id))
	}
	return graph, nil
}

// AddEdge records that `to` depends on `from`.
func (graph *Graph) AddEdge(from, to string) error {
	f, ok := graph.index[from]
	if !ok {
		return types.Configf("%s depends on unknown variable %q", to, from)
	}
	t, ok := graph.index[to]
	if !ok {
		return types.Configf("unknown variable %q", to)
	}
	// simple graphs reject self loops
	if f == t {
		graph.self = append(graph.self, from)
		return nil
	}
	graph.g.SetEdge(graph.g.NewEdge(simple.Node(f), simple.Node(t)))
	return nil
}

// Len number of variables.
func (graph *Graph) Len() int { return len(graph.names) }

// Dependencies direct dependencies of name, in node order.
func (graph *Graph) Dependencies(name string) []string {
	id, ok := graph.index[name]
	if !ok {
		return nil
	}
	nodes := gonum.NodesOf(graph.g.To(id))
	byID(nodes)
	return graph.namesOf(nodes)
}

// Sort returns every variable after all of its dependencies. Among independent
// variables the construction order is kept. A cycle gives *types.CyclicDependencyError.
func (graph *Graph) Sort() ([]string, error) {
	if len(graph.self) > 0 {
		name := graph.self[0]
		return nil, &types.CyclicDependencyError{Cycle: []string{name, name}}
	}
	nodes, err := topo.SortStabilized(graph.g, byID)
	if err != nil {
		if _, ok := err.(topo.Unorderable); ok {
			return nil, &types.CyclicDependencyError{Cycle: graph.cycle()}
		}
		return nil, fmt.Errorf("sort dependencies: %w", err)
	}
	return graph.namesOf(nodes), nil
}

// cycle picks one cycle deterministically: the shortest, then the one through the
// earliest node. The returned path starts and ends at the same variable.
func (graph *Graph) cycle() []string {
	var best []gonum.Node
	for _, c := range topo.DirectedCyclesIn(graph.g) {
		c = rotate(c)
		if best == nil || len(c) < len(best) || (len(c) == len(best) && c[0].ID() < best[0].ID()) {
			best = c
		}
	}
	return graph.namesOf(best)
}

// rotate turns a closed path so it starts at its lowest node ID.
func rotate(c []gonum.Node) []gonum.Node {
	if len(c) < 2 {
		return c
	}
	open := c[:len(c)-1]
	low := 0
	for i, n := range open {
		if n.ID() < open[low].ID() {
			low = i
		}
	}
	out := make([]gonum.Node, 0, len(c))
	out = append(out, open[low:]...)
	out = append(out, open[:low]...)
	return append(out, open[low])
}

func (graph *Graph) namesOf(nodes []gonum.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = graph.names[n.ID()]
	}
	return out
}

func byID(nodes []gonum.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
}
