package render

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// ErrEngineNotFound is returned by [DotEngine.Render] when the Graphviz
// binary cannot be located on PATH. Matching with [errors.Is] lets callers
// tell a missing engine apart from a failed render.
var ErrEngineNotFound = errors.New("rendering engine not found")

// Engine turns DOT text into image bytes.
//
// Engines are pure converters and never touch the filesystem; writing the
// result is the [Renderer]'s job.
type Engine interface {
	// Render produces the image bytes for the DOT source in the given format.
	Render(source []byte, format Format) ([]byte, error)
	// Name identifies the engine in flags, logs, and error messages.
	Name() string
}

const (
	// EngineDot selects the external Graphviz dot binary, the default.
	EngineDot = "dot"
	// EngineBuiltin selects the embedded Graphviz library.
	EngineBuiltin = "builtin"
)

// EngineNames lists the selectable engine names in display order.
func EngineNames() []string {
	return []string{EngineDot, EngineBuiltin}
}

// NewEngine returns the engine registered under name.
// An empty name selects the dot engine.
func NewEngine(name string) (Engine, error) {
	switch name {
	case "", EngineDot:
		return DotEngine{}, nil
	case EngineBuiltin:
		return GraphvizEngine{}, nil
	default:
		return nil, fmt.Errorf("unknown engine: %q (must be one of: dot, builtin)", name)
	}
}

// DotEngine renders through the Graphviz dot binary installed on the host.
// The zero value is ready to use and looks up "dot" on PATH.
type DotEngine struct {
	// Binary overrides the executable name. Empty means "dot".
	Binary string
}

// Name returns the engine name used in flags and logs.
func (e DotEngine) Name() string { return EngineDot }

// Render shells out to dot with the DOT source on stdin and collects the
// image from stdout. The call blocks until the engine exits; no timeout or
// cancellation is applied. A non-zero exit surfaces the engine's stderr.
func (e DotEngine) Render(source []byte, format Format) ([]byte, error) {
	bin := e.Binary
	if bin == "" {
		bin = "dot"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not on PATH. Install with:\n  macOS:  brew install graphviz\n  Linux:  apt install graphviz", ErrEngineNotFound, bin)
	}

	cmd := exec.Command(path, "-T"+string(format))
	cmd.Stdin = bytes.NewReader(source)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", bin, err, errBuf.String())
	}
	return out.Bytes(), nil
}
