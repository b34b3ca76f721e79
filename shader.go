package lowpoly

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// ShadeMode selects how the gradient color of a triangle is perturbed.
type ShadeMode int

const (
	// LightShading shifts the brightness of every channel by the same amount,
	// proportional to the angle between the face normal and the light.
	LightShading ShadeMode = iota
	// NoiseShading adds independent random noise to every channel.
	NoiseShading
)

func (m ShadeMode) String() string {
	switch m {
	case LightShading:
		return "light"
	case NoiseShading:
		return "noise"
	}
	return "unknown"
}

// DefaultLight is the direction of the light source used when none is configured.
var DefaultLight = r3.Vec{X: 1, Y: 0, Z: 0}

// Shader resolves the fill color of the mesh triangles.
// Rand feeds the noise shading. If nil, a generator seeded from the
// clock is created on first use.
type Shader struct {
	Gradient  *Gradient
	Mode      ShadeMode
	Magnitude int
	Light     r3.Vec
	Rand      *rand.Rand
}

// Shade assigns t the gradient color found at its centroid, then applies
// the light or the noise according to the shading mode.
// The vertices of t are never modified.
func (s *Shader) Shade(t *Triangle) error {
	if s.Gradient == nil {
		return ErrNoStops
	}
	c, err := s.Gradient.At(t.Centroid().X)
	if err != nil {
		return err
	}
	t.Color = c

	switch s.Mode {
	case LightShading:
		if delta, ok := s.brightness(t); ok {
			t.Color = t.Color.Shift(delta)
		}
	case NoiseShading:
		t.Color = t.Color.Jitter(s.random(), s.Magnitude)
	}
	return nil
}

// Intensity returns the cosine between the face normal of t and the light
// direction. ok is false if either vector has no length.
func (s *Shader) Intensity(t Triangle) (float64, bool) {
	normal := t.Normal()
	if r3.Norm(normal) == 0 || r3.Norm(s.Light) == 0 {
		return 0, false
	}
	intensity := r3.Cos(normal, s.Light)
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) {
		return 0, false
	}
	return Clamp(intensity, -1, 1), true
}

func (s *Shader) brightness(t *Triangle) (int, bool) {
	if s.Magnitude == 0 {
		return 0, false
	}
	intensity, ok := s.Intensity(*t)
	if !ok {
		Logger().Debug("skipping light on degenerate triangle",
			"centroid", t.Centroid(), "light", s.Light)
		return 0, false
	}
	return int(math.Round(intensity * float64(s.Magnitude))), true
}

func (s *Shader) random() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}
