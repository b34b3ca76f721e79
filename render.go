package lowpoly

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
)

// Orientation tells along which axis of the canvas the gradient runs.
type Orientation int

const (
	// Horizontal runs the gradient from the left to the right edge.
	Horizontal Orientation = iota
	// Vertical transposes the mesh so the gradient runs from top to bottom.
	Vertical
	// RandomOrientation picks one of the above with a coin flip.
	RandomOrientation
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case RandomOrientation:
		return "random"
	}
	return "unknown"
}

// Resolve turns RandomOrientation into Horizontal or Vertical.
func (o Orientation) Resolve(rnd *rand.Rand) Orientation {
	if o != RandomOrientation {
		return o
	}
	if rnd.Intn(2) == 1 {
		return Vertical
	}
	return Horizontal
}

// Renderer receives the drawing commands of the generator and serializes
// them into a document. The calls are made in this order: BeginDocument,
// SetBackgroundGradient, DrawTriangle for every triangle, Finish.
//
// The triangle coordinates are expressed in mesh space: the gradient always
// runs along the x axis. For a Vertical orientation the renderer is
// responsible for transposing the mesh onto the canvas.
type Renderer interface {
	BeginDocument(width, height int)
	SetBackgroundGradient(stops []Color, o Orientation)
	DrawTriangle(p1, p2, p3 Vertex, fill Color)
	Finish() error
}

// meshSize returns the dimensions of the canvas seen from mesh space.
func meshSize(width, height int, o Orientation) (float64, float64) {
	if o == Vertical {
		return float64(height), float64(width)
	}
	return float64(width), float64(height)
}

// Format is the serialization format of the generated artifact.
type Format int

const (
	FormatSVG Format = iota
	FormatPNG
	FormatJPEG
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	}
	return "unknown"
}

// IsRaster reports whether the format is a bitmap format.
func (f Format) IsRaster() bool {
	return f != FormatSVG
}

// FormatFromPath returns the output format matching the extension of path.
// Paths without a known extension (stdout included) produce SVG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return FormatSVG, fmt.Errorf("unsupported output format %q", ext)
	}
}

// NewRenderer returns the renderer serializing the given format into w.
func NewRenderer(f Format, w io.Writer) Renderer {
	if f == FormatSVG {
		return NewSVG(w)
	}
	return NewImage(w, f)
}
