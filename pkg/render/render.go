package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/archviz/pkg/diagram"
)

// Format identifies an output image format.
type Format string

const (
	// FormatPNG is a raster image, the default output format.
	FormatPNG Format = "png"
	// FormatSVG is a scalable vector image.
	FormatSVG Format = "svg"
	// FormatPDF is a print-ready document. Only the dot engine produces it.
	FormatPDF Format = "pdf"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatPNG

// Formats lists the supported output formats in display order.
func Formats() []Format {
	return []Format{FormatPNG, FormatSVG, FormatPDF}
}

// ParseFormat normalizes s (case, surrounding space) and returns the
// matching Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %q (must be one of: png, svg, pdf)", s)
	}
}

// Ext returns the file extension for the format, including the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// Renderer writes a diagram's DOT source and rendered image to disk.
type Renderer struct {
	engine Engine
}

// New creates a Renderer backed by the given engine.
// A nil engine defaults to [DotEngine].
func New(engine Engine) *Renderer {
	if engine == nil {
		engine = DotEngine{}
	}
	return &Renderer{engine: engine}
}

// Engine returns the engine the renderer dispatches to.
func (r *Renderer) Engine() Engine { return r.engine }

// Render serializes g, saves the DOT source under base, renders it with
// the configured engine, and writes the image next to the source as base
// plus the format extension. It returns the image path.
//
// The image is produced fully in memory before its file is created, so an
// engine failure leaves no image file behind. An existing file under the
// same name is truncated, never appended to, which makes re-rendering to
// the same base name deterministic.
func (r *Renderer) Render(g *diagram.Graph, base string, format Format) (string, error) {
	source := []byte(g.Source())
	if err := os.WriteFile(base, source, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", base, err)
	}

	img, err := r.engine.Render(source, format)
	if err != nil {
		return "", err
	}

	path := base + format.Ext()
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// RenderAndOpen renders like [Renderer.Render] and, when open is true,
// hands the resulting file to the host's default viewer via [Open].
//
// A render failure returns an empty path. A viewer failure returns the
// path of the successfully rendered image together with the error, so
// callers can degrade to printing the location.
func (r *Renderer) RenderAndOpen(g *diagram.Graph, base string, format Format, open bool) (string, error) {
	path, err := r.Render(g, base, format)
	if err != nil {
		return "", err
	}
	if !open {
		return path, nil
	}
	if err := Open(path); err != nil {
		return path, err
	}
	return path, nil
}
