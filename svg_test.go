package lowpoly

import (
	"bytes"
	"strings"
	"testing"
)

func TestSVG_Document(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf)
	s.Title = "Dusk & dawn"

	s.BeginDocument(640, 480)
	s.SetBackgroundGradient([]Color{red, black, blue}, Horizontal)
	s.DrawTriangle(Vertex{X: 1, Y: 2}, Vertex{X: 3, Y: 4}, Vertex{X: 5.5, Y: 6}, Color{0, 255, 0})
	s.DrawTriangle(Vertex{X: -1}, Vertex{X: 1}, Vertex{Y: 1}, Color{0x12, 0x34, 0x56})
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="640" height="480"`,
		`viewBox="0 0 640 480"`,
		`<title>Dusk &amp; dawn</title>`,
		`<g id="mesh">`,
		`<linearGradient id="grad1" x1="0%" y1="0%" x2="100%" y2="0%">`,
		`<stop offset="0%" stop-color="#ff0000" stop-opacity="1.00"/>`,
		`<stop offset="50%" stop-color="#000000" stop-opacity="1.00"/>`,
		`<stop offset="100%" stop-color="#0000ff" stop-opacity="1.00"/>`,
		`<path d="M0,0 L640,0 L640,480 L0,480 Z" fill="url(#grad1)" />`,
		`<path d="M1.00,2.00 L3.00,4.00 L5.50,6.00 Z" style="fill:#00ff00" />`,
		`<path d="M-1.00,0.00 L1.00,0.00 L0.00,1.00 Z" style="fill:#123456" />`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document does not contain %q\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<g "); n != 1 || strings.Count(out, "</g>") != 1 {
		t.Errorf("expected a single balanced group, got %d opened", n)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("document is not closed")
	}
	// The background is painted before any triangle.
	if strings.Index(out, "url(#grad1)") > strings.Index(out, "fill:#00ff00") {
		t.Error("background drawn after the triangles")
	}
}

func TestSVG_Vertical(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf)
	s.BeginDocument(300, 100)
	s.SetBackgroundGradient([]Color{white}, Vertical)
	s.DrawTriangle(Vertex{}, Vertex{X: 10}, Vertex{Y: 10}, white)
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, `<g transform="scale(-1, 1) rotate(90)">`) {
		t.Errorf("missing transpose transform:\n%s", out)
	}
	// The background covers the canvas as seen from mesh space.
	if !strings.Contains(out, `d="M0,0 L100,0 L100,300 L0,300 Z"`) {
		t.Errorf("background not transposed:\n%s", out)
	}
	// A single stop is spread over the whole gradient.
	if strings.Count(out, `stop-color="#ffffff"`) != 2 {
		t.Errorf("single stop gradient should carry two stops:\n%s", out)
	}
}

func TestSVG_PathCount(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	stats, err := NewProcessor(cfg).Process(NewSVG(&buf), nil)
	if err != nil {
		t.Fatal(err)
	}
	// One path per triangle plus the background.
	if got := strings.Count(buf.String(), "<path "); got != stats.Triangles+1 {
		t.Errorf("document holds %d paths, want %d", got, stats.Triangles+1)
	}
}

func TestSVG_FinishWithoutBegin(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSVG(&buf).Finish(); err == nil {
		t.Error("expected an error for a document never started")
	}
}
