package lowpoly

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const gradientID = "grad1"

// SVG is a Renderer producing a scalable vector graphics document.
type SVG struct {
	Title       string
	Description string

	w       *bufio.Writer
	canvas  *svg.SVG
	width   int
	height  int
	open    bool
	started bool
}

// NewSVG returns an SVG renderer writing the document into w.
// Nothing is guaranteed to reach w before Finish is called.
func NewSVG(w io.Writer) *SVG {
	bw := bufio.NewWriter(w)
	return &SVG{
		w:      bw,
		canvas: svg.New(bw),
	}
}

// BeginDocument writes the document header.
func (s *SVG) BeginDocument(width, height int) {
	s.width, s.height = width, height
	s.started = true

	s.canvas.Startview(width, height, 0, 0, width, height)
	if s.Title != "" {
		s.canvas.Title(s.Title)
	}
	if s.Description != "" {
		s.canvas.Desc(s.Description)
	}
}

// SetBackgroundGradient opens the mesh group and paints the canvas with a
// linear gradient through the evenly spaced stops.
func (s *SVG) SetBackgroundGradient(stops []Color, o Orientation) {
	s.openGroup(o)
	if len(stops) == 0 {
		return
	}

	offsets := stopOffsets(len(stops))
	oc := make([]svg.Offcolor, len(stops))
	for i, c := range stops {
		oc[i] = svg.Offcolor{
			Offset:  uint8(math.Round(offsets[i])),
			Color:   c.Hex(),
			Opacity: 1,
		}
	}
	// A single stop still needs two ends for a valid gradient.
	if len(oc) == 1 {
		oc = append(oc, svg.Offcolor{Offset: 100, Color: oc[0].Color, Opacity: 1})
	}

	s.canvas.Def()
	s.canvas.LinearGradient(gradientID, 0, 0, 100, 0, oc)
	s.canvas.DefEnd()

	mw, mh := meshSize(s.width, s.height, o)
	s.canvas.Path(fmt.Sprintf("M0,0 L%s,0 L%s,%s L0,%s Z",
		ftoa(mw), ftoa(mw), ftoa(mh), ftoa(mh)),
		fmt.Sprintf(`fill="url(#%s)"`, gradientID))
}

// DrawTriangle writes the triangle as a closed path.
func (s *SVG) DrawTriangle(p1, p2, p3 Vertex, fill Color) {
	s.openGroup(Horizontal)
	s.canvas.Path(
		fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f L%.2f,%.2f Z", p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y),
		"fill:"+fill.Hex(),
	)
}

// Finish closes the document and flushes it to the underlying writer.
func (s *SVG) Finish() error {
	if !s.started {
		return fmt.Errorf("svg: document was never started")
	}
	if s.open {
		s.canvas.Gend()
		s.open = false
	}
	s.canvas.End()

	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("svg: unable to write document: %w", err)
	}
	return nil
}

// openGroup starts the group holding the mesh, once.
// The vertical transform maps (x, y) to (y, x).
func (s *SVG) openGroup(o Orientation) {
	if s.open {
		return
	}
	if o == Vertical {
		s.canvas.Gtransform("scale(-1, 1) rotate(90)")
	} else {
		s.canvas.Gid("mesh")
	}
	s.open = true
}

func ftoa(v float64) string {
	return fmt.Sprintf("%g", v)
}
