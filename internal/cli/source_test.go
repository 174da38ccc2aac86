package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRunSourceToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.dot")
	c := New(io.Discard, log.InfoLevel)

	if err := c.runSource(path); err != nil {
		t.Fatalf("runSource() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	src := string(data)

	for _, want := range []string{
		"// Architecture Blockchain e-Sante",
		"digraph {",
		`"A" [label="Microservice medcin"];`,
		`"A" -> "D" [label="Dockerized"];`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestRunSourceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.dot")
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, log.InfoLevel)
	if err := c.runSource(path); err != nil {
		t.Fatalf("runSource() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale content") {
		t.Error("runSource() should truncate the previous file content")
	}
}

func TestOpenOutput(t *testing.T) {
	t.Run("empty path is stdout", func(t *testing.T) {
		out, err := openOutput("")
		if err != nil {
			t.Fatalf("openOutput(\"\") error: %v", err)
		}
		if nc, ok := out.(nopCloser); !ok || nc.Writer != os.Stdout {
			t.Errorf("openOutput(\"\") = %T, want nopCloser around os.Stdout", out)
		}
		if err := out.Close(); err != nil {
			t.Errorf("Close() on the stdout wrapper should be a no-op, got %v", err)
		}
	})

	t.Run("path creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		out, err := openOutput(path)
		if err != nil {
			t.Fatalf("openOutput(%q) error: %v", path, err)
		}
		if _, err := io.WriteString(out, "x"); err != nil {
			t.Fatal(err)
		}
		if err := out.Close(); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file missing: %v", err)
		}
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.txt")
		if _, err := openOutput(path); err == nil {
			t.Error("openOutput() should fail when the directory does not exist")
		}
	})
}
