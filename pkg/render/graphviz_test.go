package render

import (
	"strings"
	"testing"
)

func TestGraphvizEngineSVG(t *testing.T) {
	src := []byte(`digraph {
  "a" [label="service a"];
  "b" [label="service b"];
  "a" -> "b";
}
`)

	out, err := GraphvizEngine{}.Render(src, FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(out), "<svg") {
		t.Error("Render() output should contain an <svg> tag")
	}
	if !strings.Contains(string(out), "service a") {
		t.Error("Render() output should contain the node label")
	}
}

func TestGraphvizEngineInvalidDOT(t *testing.T) {
	if _, err := (GraphvizEngine{}).Render([]byte("this is not DOT"), FormatSVG); err == nil {
		t.Fatal("Render() should fail on invalid DOT")
	}
}

func TestGraphvizEnginePDFUnsupported(t *testing.T) {
	_, err := GraphvizEngine{}.Render([]byte("digraph {}\n"), FormatPDF)
	if err == nil {
		t.Fatal("Render() should reject pdf output")
	}
	if !strings.Contains(err.Error(), "dot engine") {
		t.Errorf("error should point at the dot engine: %v", err)
	}
}
