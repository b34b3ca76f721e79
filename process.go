package lowpoly

import (
	"fmt"
	"math/rand"
	"time"
)

// Processor drives the generation of one low-poly artifact.
type Processor struct {
	Config Config
}

// Stats describes the generated mesh.
type Stats struct {
	Rows        int
	Cols        int
	Triangles   int
	Orientation Orientation
	Stops       []Color
	Seed        int64
}

// NewProcessor returns a processor for the given configuration.
func NewProcessor(cfg Config) *Processor {
	return &Processor{Config: cfg}
}

// Process generates the mesh, shades every triangle and streams the result
// into r. The optional fn closure is invoked after each drawn triangle with
// the number of triangles drawn so far and the total.
//
// All random draws come from a single generator seeded with Config.Seed
// (or the clock if the seed is zero) in a fixed order, so two runs with
// the same seed and configuration produce the same output.
func (p *Processor) Process(r Renderer, fn func(done, total int)) (Stats, error) {
	cfg := p.Config
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	orientation := cfg.Orientation.Resolve(rnd)
	length, height := meshSize(cfg.Width, cfg.Height, orientation)

	grid, err := NewGrid(length, height, cfg.EdgeLength)
	if err != nil {
		return Stats{}, err
	}
	mode := cfg.ShadeMode()
	if mode == LightShading {
		grid.Raise(rnd, cfg.Ridge())
	}
	grid.Jitter(rnd, cfg.VertexJitter*cfg.EdgeLength/100)

	stops, err := cfg.Stops(rnd)
	if err != nil {
		return Stats{}, err
	}
	gradient, err := NewGradient(stops, length)
	if err != nil {
		return Stats{}, err
	}
	shader := &Shader{
		Gradient:  gradient,
		Mode:      mode,
		Magnitude: cfg.ColorJitter,
		Light:     cfg.LightDirection(),
		Rand:      rnd,
	}

	stats := Stats{
		Rows:        grid.Rows,
		Cols:        grid.Cols,
		Orientation: orientation,
		Stops:       stops,
		Seed:        seed,
	}
	Logger().Info("mesh generated",
		"rows", grid.Rows,
		"cols", grid.Cols,
		"orientation", orientation,
		"mode", mode,
		"seed", seed,
	)

	total := grid.FaceCount()
	r.BeginDocument(cfg.Width, cfg.Height)
	r.SetBackgroundGradient(stops, orientation)

	for face := range grid.Faces() {
		t := grid.Triangle(face)
		if err := shader.Shade(&t); err != nil {
			return stats, fmt.Errorf("unable to shade triangle %v: %w", face, err)
		}
		r.DrawTriangle(t.A, t.B, t.C, t.Color)
		stats.Triangles++

		if fn != nil {
			fn(stats.Triangles, total)
		}
	}

	if err := r.Finish(); err != nil {
		return stats, err
	}
	return stats, nil
}
