// Package render turns diagram descriptions into image files on disk.
//
// # Overview
//
// Rendering happens at a narrow boundary: the diagram is serialized to
// Graphviz DOT text, an [Engine] converts that text into image bytes, and
// the [Renderer] persists both the DOT source and the image. The engine is
// deliberately not reimplemented here; Graphviz does the actual layout and
// drawing.
//
//	r := render.New(render.DotEngine{})
//	path, err := r.Render(g, "architecture_esante", render.FormatPNG)
//
// # Engines
//
// Two engines are available:
//
//   - [DotEngine]: shells out to the dot binary on the host. Supports every
//     format this package names (png, svg, pdf). Requires Graphviz to be
//     installed; a missing binary surfaces as [ErrEngineNotFound].
//   - [GraphvizEngine]: renders in process through
//     [github.com/goccy/go-graphviz]. Needs no host installation but only
//     produces png and svg.
//
// [NewEngine] resolves an engine by name ("dot", "builtin") for flag and
// configuration wiring.
//
// # Output Files
//
// [Renderer.Render] writes two files: the DOT source under the base name
// and the image under base name plus extension, both in place of whatever
// was there before. Failures to create or write either file propagate with
// the underlying I/O diagnostic attached; the image is rendered fully in
// memory first, so a failed render never leaves an image file behind.
//
// # Viewer
//
// [Open] hands a rendered file to the platform's default viewer (open,
// xdg-open, or start) as a detached process that is never awaited.
package render
