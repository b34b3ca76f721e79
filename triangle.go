package lowpoly

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is a mesh face with its resolved fill color.
type Triangle struct {
	A, B, C Vertex
	Color   Color
}

func (v Vertex) vec() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func (t Triangle) space() r3.Triangle {
	return r3.Triangle{t.A.vec(), t.B.vec(), t.C.vec()}
}

// Centroid returns the intersection of the three medians of the triangle.
func (t Triangle) Centroid() Vertex {
	c := t.space().Centroid()
	return Vertex{X: c.X, Y: c.Y, Z: c.Z}
}

// Normal returns the (non normalized) face normal, the cross product of
// the edges AB and AC. Its length is zero for degenerate triangles.
func (t Triangle) Normal() r3.Vec {
	return t.space().Normal()
}
