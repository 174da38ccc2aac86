package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// GraphvizEngine renders in process through the embedded Graphviz library.
// It needs no host installation, at the cost of supporting only png and
// svg output.
type GraphvizEngine struct{}

// Name returns the engine name used in flags and logs.
func (GraphvizEngine) Name() string { return EngineBuiltin }

// Render parses the DOT source and renders it with the embedded library.
func (GraphvizEngine) Render(source []byte, format Format) ([]byte, error) {
	target, err := builtinFormat(format)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(source)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, target, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// builtinFormat maps a Format to the embedded library's format constants.
func builtinFormat(format Format) (graphviz.Format, error) {
	switch format {
	case FormatPNG:
		return graphviz.PNG, nil
	case FormatSVG:
		return graphviz.SVG, nil
	default:
		return "", fmt.Errorf("the builtin engine cannot produce %s output (use the dot engine)", format)
	}
}
