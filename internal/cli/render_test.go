package cli

import (
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archviz/pkg/render"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"no extension", "architecture_esante", "architecture_esante"},
		{"png stripped", "diagram.png", "diagram"},
		{"svg stripped", "diagram.svg", "diagram"},
		{"pdf stripped", "diagram.pdf", "diagram"},
		{"uppercase stripped", "diagram.PNG", "diagram"},
		{"unknown extension kept", "diagram.dot", "diagram.dot"},
		{"path with directories", "out/diagram.png", "out/diagram"},
		{"dot in directory name", "v1.0/diagram", "v1.0/diagram"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output); got != tt.want {
				t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestNewRenderOpts(t *testing.T) {
	opts := newRenderOpts()

	if opts.output != defaultOutput {
		t.Errorf("output = %q, want %q", opts.output, defaultOutput)
	}
	if opts.format != string(render.DefaultFormat) {
		t.Errorf("format = %q, want %q", opts.format, render.DefaultFormat)
	}
	if opts.engine != render.EngineDot {
		t.Errorf("engine = %q, want %q", opts.engine, render.EngineDot)
	}
	if !opts.open {
		t.Error("open should default to true, matching the original view=True")
	}
}

func TestRunRenderViewerFailureStillSucceeds(t *testing.T) {
	// An empty PATH makes the platform opener unresolvable, so the viewer
	// spawn fails after the render has already succeeded. The command must
	// still exit cleanly: the image is on disk and the failure degrades to
	// a warning. The builtin engine renders in process, so the empty PATH
	// does not affect the render itself. --open stays at its default, on.
	t.Setenv("PATH", "")
	t.Chdir(t.TempDir())

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"--engine", "builtin", "--format", "svg", "--output", "out"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, err := os.Stat("out.svg"); err != nil {
		t.Errorf("rendered image should exist despite the viewer failure: %v", err)
	}
	if _, err := os.Stat("out"); err != nil {
		t.Errorf("DOT source should exist alongside the image: %v", err)
	}
}

func TestBuildArchitecture(t *testing.T) {
	g := buildArchitecture()

	if got := g.Title(); got != "Architecture Blockchain e-Sante" {
		t.Errorf("Title() = %q, want the e-sante title", got)
	}
	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount() = %d, want 4", got)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount() = %d, want 3", got)
	}

	labels := map[string]string{
		"A": "Microservice medcin",
		"B": "Blockchain Node",
		"C": "Base de Donnees",
		"D": "Docker Container",
	}
	for id, want := range labels {
		n, ok := g.Node(id)
		if !ok {
			t.Fatalf("Node(%q) not found", id)
		}
		if n.Label != want {
			t.Errorf("Node(%q).Label = %q, want %q", id, n.Label, want)
		}
	}

	edges := g.Edges()
	if edges[0].From != "A" || edges[0].To != "B" || edges[0].Label != "" {
		t.Errorf("edges[0] = %+v, want unlabeled A -> B", edges[0])
	}
	if edges[1].From != "B" || edges[1].To != "C" || edges[1].Label != "" {
		t.Errorf("edges[1] = %+v, want unlabeled B -> C", edges[1])
	}
	if edges[2].From != "A" || edges[2].To != "D" || edges[2].Label != "Dockerized" {
		t.Errorf("edges[2] = %+v, want A -> D labeled Dockerized", edges[2])
	}
}
