package lowpoly

import (
	"errors"
	"math"
)

// ErrNoStops is returned when a gradient lookup is made without any color stop.
var ErrNoStops = errors.New("gradient has no color stops")

// ColorAt returns the color of a piecewise linear gradient at position x.
// The stops are evenly spaced along [0, maxX]: positions at or before 0
// take the first stop, positions at or after maxX take the last one.
// A NaN position takes the first stop.
func ColorAt(x float64, stops []Color, maxX float64) (Color, error) {
	switch len(stops) {
	case 0:
		return Color{}, ErrNoStops
	case 1:
		return stops[0], nil
	}

	last := len(stops) - 1
	if x <= 0 || math.IsNaN(x) {
		return stops[0], nil
	}
	if x >= maxX {
		return stops[last], nil
	}

	step := maxX / float64(last)
	i := int(x / step)
	if i >= last {
		return stops[last], nil
	}
	t := math.Mod(x, step) / step

	return Lerp(stops[i], stops[i+1], t), nil
}

// Gradient is a horizontal color gradient spanning [0, Extent].
type Gradient struct {
	Stops  []Color
	Extent float64
}

// NewGradient creates a gradient over [0, extent]. At least one stop is required.
func NewGradient(stops []Color, extent float64) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	s := make([]Color, len(stops))
	copy(s, stops)

	return &Gradient{Stops: s, Extent: extent}, nil
}

// At returns the gradient color at position x.
func (g *Gradient) At(x float64) (Color, error) {
	return ColorAt(x, g.Stops, g.Extent)
}

// Offsets returns the position of every stop as a percentage of the extent.
func (g *Gradient) Offsets() []float64 {
	return stopOffsets(len(g.Stops))
}

func stopOffsets(n int) []float64 {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	offsets := make([]float64, n)
	step := 100 / float64(n-1)
	for i := range offsets {
		offsets[i] = float64(i) * step
	}
	offsets[n-1] = 100

	return offsets
}
