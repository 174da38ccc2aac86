package diagram

import (
	"bytes"
	"fmt"
)

// Source returns the graph serialized as Graphviz DOT text.
//
// The title appears as a leading comment line, nodes and edges follow in
// insertion order, and every identifier and label is quoted so arbitrary
// text (spaces, quotes, backslashes) stays valid DOT. The output is
// deterministic for a given build sequence, which keeps repeated renders
// byte-for-byte identical.
func (g *Graph) Source() string {
	var buf bytes.Buffer
	if g.title != "" {
		fmt.Fprintf(&buf, "// %s\n", g.title)
	}
	buf.WriteString("digraph {\n")

	for _, n := range g.nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.Label)
	}

	if len(g.nodes) > 0 && len(g.edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
