package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.Logger == nil {
		t.Fatal("New() should attach a logger")
	}

	c.Logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("logger should write to the given writer")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	c.Logger.Debug("before")
	if buf.Len() != 0 {
		t.Fatal("debug output should be filtered at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("after")
	if buf.Len() == 0 {
		t.Error("debug output should appear after SetLogLevel(debug)")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be set so errors do not dump help text")
	}

	subs := make(map[string]bool)
	for _, sub := range root.Commands() {
		subs[sub.Name()] = true
	}
	for _, want := range []string{"source", "completion"} {
		if !subs[want] {
			t.Errorf("root command missing %q subcommand (have %v)", want, subs)
		}
	}

	for _, flag := range []string{"output", "format", "engine", "open"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("root command missing --%s flag", flag)
		}
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if err := root.Args(root, []string{"unexpected"}); err == nil {
		t.Error("root command should reject positional arguments")
	}
}
