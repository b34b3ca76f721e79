package lowpoly

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Overscan is the number of extra rows and columns added to the grid so
// that the jittered mesh covers the canvas without visible straight borders.
const Overscan = 8

// ErrInvalidSize is returned for non-positive canvas dimensions or edge lengths.
var ErrInvalidSize = errors.New("invalid mesh size")

// Vertex is a mesh point in canvas coordinates.
// Z is an optional ridge height which is only taken into account by the lighting.
type Vertex struct {
	X, Y, Z float64
}

// Grid is a row-major triangular lattice. Odd rows are shifted to the
// right by half an edge length, so that every three adjacent vertices
// form an equilateral triangle before jitter is applied.
type Grid struct {
	Vertices []Vertex
	Rows     int
	Cols     int
	Edge     float64
}

// NewGrid builds the lattice covering a canvas of the given length (along
// the gradient axis) and height, with overscan on every side.
func NewGrid(length, height, edge float64) (*Grid, error) {
	if edge <= 0 || math.IsNaN(edge) || math.IsInf(edge, 0) {
		return nil, fmt.Errorf("%w: edge length %v", ErrInvalidSize, edge)
	}
	if length <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %vx%v", ErrInvalidSize, length, height)
	}

	var (
		rowStep = edge * sin60
		rows    = Overscan + int(height/rowStep)
		cols    = Overscan + int(length/edge)
		xOffset = edge * 3
		yOffset = rowStep * 2
	)

	vertices := make([]Vertex, 0, rows*cols)
	for row := 0; row < rows; row++ {
		shift := float64(row%2) * edge / 2
		for col := 0; col < cols; col++ {
			vertices = append(vertices, Vertex{
				X: float64(col)*edge + shift - xOffset,
				Y: float64(row)*rowStep - yOffset,
			})
		}
	}

	return &Grid{
		Vertices: vertices,
		Rows:     rows,
		Cols:     cols,
		Edge:     edge,
	}, nil
}

// Len returns the number of vertices of the grid.
func (g *Grid) Len() int {
	return len(g.Vertices)
}

// Index returns the position of the vertex at row and col.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// At returns the vertex at row and col.
func (g *Grid) At(row, col int) Vertex {
	return g.Vertices[g.Index(row, col)]
}

// Jitter moves every vertex in a random direction by a distance drawn
// uniformly from [0.3*maxRadius, maxRadius]. Vertices are moved independently.
// A radius that is not a positive finite number leaves the grid untouched.
func (g *Grid) Jitter(rnd *rand.Rand, maxRadius float64) {
	if !(maxRadius > 0) || math.IsInf(maxRadius, 0) {
		return
	}
	for i := range g.Vertices {
		radius := maxRadius * (0.3 + 0.7*rnd.Float64())
		angle := 2 * math.Pi * rnd.Float64()

		g.Vertices[i].X += radius * math.Cos(angle)
		g.Vertices[i].Y += radius * math.Sin(angle)
	}
}

// Raise assigns every vertex a random ridge height in [-steepness, steepness].
// The heights give the faces a tilt for the light shading, the 2D geometry is unchanged.
func (g *Grid) Raise(rnd *rand.Rand, steepness float64) {
	if !(steepness > 0) || math.IsInf(steepness, 0) {
		return
	}
	for i := range g.Vertices {
		g.Vertices[i].Z = steepness * (2*rnd.Float64() - 1)
	}
}
