package lowpoly

import "iter"

// Face holds the grid indices of the three vertices of a triangle.
type Face [3]int

// Faces walks the grid and yields every triangle of the tiling.
// The upward pointing triangles (one vertex in the next row) are emitted
// first, followed by the downward pointing ones (one vertex in the
// previous row). The last column of a row never connects to the first
// column of the following row.
func (g *Grid) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		n, cols := len(g.Vertices), g.Cols
		if cols < 2 {
			return
		}

		// /\ shapes
		for i := 0; i+cols < n; i++ {
			if i%cols == cols-1 {
				continue
			}
			offset := (i / cols) % 2
			if !yield(Face{i, i + 1, i + cols + offset}) {
				return
			}
		}
		// \/ shapes
		for i := cols; i+1 < n; i++ {
			if i%cols == cols-1 {
				continue
			}
			offset := (i / cols) % 2
			if !yield(Face{i, i + 1, i - cols + offset}) {
				return
			}
		}
	}
}

// FaceCount returns the number of triangles yielded by Faces.
func (g *Grid) FaceCount() int {
	if g.Rows < 2 || g.Cols < 2 {
		return 0
	}
	return 2 * (g.Rows - 1) * (g.Cols - 1)
}

// Triangle returns the geometry of the face f.
func (g *Grid) Triangle(f Face) Triangle {
	return Triangle{
		A: g.Vertices[f[0]],
		B: g.Vertices[f[1]],
		C: g.Vertices[f[2]],
	}
}
