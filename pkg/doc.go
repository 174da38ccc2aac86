// Package pkg provides the core libraries for ArchViz diagram rendering.
//
// # Overview
//
// ArchViz describes a small system architecture as a directed, labeled
// graph and renders it to an image through Graphviz. The pkg directory is
// organized into three areas:
//
//  1. [diagram] - The in-memory graph description and its DOT serialization
//  2. [render] - Output formats, rendering engines, file writing, viewer
//  3. [buildinfo] - Build-time version metadata for --version
//
// # Architecture
//
// The data flow through ArchViz:
//
//	diagram.Graph (nodes, edges, title)
//	         ↓
//	    [diagram] package (serialize to DOT text)
//	         ↓
//	    [render] package (engine: dot subprocess or embedded Graphviz)
//	         ↓
//	    PNG/SVG/PDF output file (+ DOT source alongside)
//
// # Quick Start
//
// Describe an architecture and render it to a PNG:
//
//	import (
//	    "github.com/matzehuels/archviz/pkg/diagram"
//	    "github.com/matzehuels/archviz/pkg/render"
//	)
//
//	// 1. Describe the diagram
//	g := diagram.New("Architecture Blockchain e-Sante")
//	g.AddNode("A", "Microservice medcin")
//	g.AddNode("B", "Blockchain Node")
//	g.AddEdge("A", "B")
//
//	// 2. Render it
//	r := render.New(render.DotEngine{})
//	path, err := r.Render(g, "architecture_esante", render.FormatPNG)
//
// # Main Packages
//
// [diagram] - Ordered nodes and directed, optionally labeled edges plus a
// title. Deliberately permissive, matching Graphviz: re-adding a node
// overwrites its label, and edges may reference undeclared identifiers.
// [diagram.Graph.Source] emits deterministic DOT text.
//
// [render] - The rendering boundary. An [render.Engine] converts DOT text
// to image bytes: [render.DotEngine] shells out to the dot binary,
// [render.GraphvizEngine] renders in process via goccy/go-graphviz. The
// [render.Renderer] persists the DOT source and the image and can hand the
// result to the platform viewer.
//
// [buildinfo] - ldflags-injected version, commit, and build date.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/diagram/...  # Specific package
//	go test -run Example       # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/archviz/pkg/diagram
// [render]: https://pkg.go.dev/github.com/matzehuels/archviz/pkg/render
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/archviz/pkg/buildinfo
package pkg
