// Package diagram provides an in-memory description of a directed, labeled
// architecture diagram and its serialization to Graphviz DOT text.
//
// # Overview
//
// A [Graph] collects labeled nodes and directed, optionally labeled edges in
// insertion order, together with a title. It is a description only: nothing
// is laid out or drawn here. Rendering the description to an image is the
// job of the render package, which hands the DOT text produced by
// [Graph.Source] to a Graphviz engine.
//
// # Building a Diagram
//
// Create a graph with [New], add nodes with [Graph.AddNode], and edges with
// [Graph.AddEdge] or the pair shorthand [Graph.AddEdgePairs]:
//
//	g := diagram.New("Architecture Blockchain e-Sante")
//	g.AddNode("A", "Microservice medcin")
//	g.AddNode("B", "Blockchain Node")
//	g.AddEdge("A", "B")
//	g.AddEdge("A", "D", diagram.WithLabel("Dockerized"))
//
// The builder is deliberately permissive, matching Graphviz's own rules:
// re-adding a node overwrites its label (last write wins), and edges may
// reference identifiers that were never declared - those become implicit
// nodes at render time. Nothing here returns an error because nothing here
// can fail.
//
// # DOT Output
//
// [Graph.Source] emits the description as DOT with the title as a leading
// comment. All identifiers and labels are quoted, so free text is safe.
// Output is deterministic: the same build sequence always yields the same
// bytes.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. A diagram is built and
// rendered by a single goroutine; accessors return copies so rendered
// results cannot be mutated behind the renderer's back.
package diagram
