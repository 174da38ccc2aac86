package diagram

import "slices"

// Node is a labeled vertex in the diagram.
// Nodes are created while the diagram is being built and never mutated
// afterwards; redefining an identifier replaces the label in place.
type Node struct {
	ID    string // Unique identifier within the graph
	Label string // Human-readable display text
}

// Edge is a directed connection between two node identifiers.
// An empty Label means the edge is drawn without a caption.
type Edge struct {
	From  string // Source node ID
	To    string // Target node ID
	Label string // Optional caption shown along the edge
}

// EdgeOption configures an edge passed to [Graph.AddEdge].
type EdgeOption func(*Edge)

// WithLabel sets the caption drawn along the edge.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is an in-memory diagram description: an ordered collection of nodes,
// an ordered collection of edges, and a title that becomes a comment line in
// the generated DOT source.
//
// Nodes keep insertion order, and redefining a node keeps its original
// position. Edges keep insertion order and may reference identifiers that
// were never declared as nodes; Graphviz materializes those as implicit
// nodes at render time.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use.
type Graph struct {
	title string
	nodes []Node
	index map[string]int // node ID -> position in nodes
	edges []Edge
}

// New creates an empty graph with the given title.
// The title may be empty, in which case no comment line is emitted
// by [Graph.Source].
func New(title string) *Graph {
	return &Graph{
		title: title,
		index: make(map[string]int),
	}
}

// Title returns the title the graph was created with.
func (g *Graph) Title() string { return g.title }

// AddNode registers a node under the given identifier. If the identifier
// is already present the node is redefined: the new label replaces the old
// one (last write wins) and the node keeps its position in the ordering.
//
// No validation is applied; empty identifiers and labels are accepted and
// quoted into valid DOT by [Graph.Source].
func (g *Graph) AddNode(id, label string) {
	if i, ok := g.index[id]; ok {
		g.nodes[i].Label = label
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Label: label})
}

// AddEdge registers a directed edge between two identifiers. Endpoints are
// not checked against the declared nodes: an edge to an undeclared
// identifier is accepted and surfaces as an implicit, unlabeled node when
// rendered. Multiple edges between the same pair are allowed.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) {
	e := Edge{From: from, To: to}
	for _, opt := range opts {
		opt(&e)
	}
	g.edges = append(g.edges, e)
}

// AddEdgePairs registers one unlabeled edge per pair string, where the
// first rune is the source identifier and the remainder the target:
// "AB" adds the edge A → B. Pairs shorter than two runes are ignored.
func (g *Graph) AddEdgePairs(pairs ...string) {
	for _, p := range pairs {
		r := []rune(p)
		if len(r) < 2 {
			continue
		}
		g.AddEdge(string(r[0]), string(r[1:]))
	}
}

// Node returns the node registered under id and whether it exists.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns the nodes in insertion order.
// The returned slice is a copy and can be safely modified.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns the edges in insertion order.
// The returned slice is a copy and can be safely modified.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, counting duplicates.
func (g *Graph) EdgeCount() int { return len(g.edges) }
