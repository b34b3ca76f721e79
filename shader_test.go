package lowpoly

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func flatGradient(t *testing.T, c Color) *Gradient {
	t.Helper()
	g, err := NewGradient([]Color{c}, 100)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestShader_GradientAtCentroid(t *testing.T) {
	g, err := NewGradient([]Color{black, white}, 300)
	if err != nil {
		t.Fatal(err)
	}
	s := &Shader{Gradient: g, Mode: NoiseShading}

	tr := Triangle{
		A: Vertex{X: 100, Y: 0},
		B: Vertex{X: 200, Y: 0},
		C: Vertex{X: 150, Y: 80},
	}
	if err := s.Shade(&tr); err != nil {
		t.Fatal(err)
	}
	want, _ := ColorAt(150, g.Stops, 300)
	if tr.Color != want {
		t.Errorf("Shade() color = %v, want %v", tr.Color, want)
	}
}

func TestShader_LightIntensity(t *testing.T) {
	// Counter clockwise in the xy plane, the normal points towards +z.
	tr := Triangle{
		A: Vertex{X: 0, Y: 0},
		B: Vertex{X: 10, Y: 0},
		C: Vertex{X: 0, Y: 10},
	}

	tests := []struct {
		name  string
		light r3.Vec
		want  Color
	}{
		{"facing the light", r3.Vec{Z: 1}, Color{130, 130, 130}},
		{"away from the light", r3.Vec{Z: -1}, Color{70, 70, 70}},
		{"grazing light", r3.Vec{X: 1}, Color{100, 100, 100}},
		{"half angle", r3.Vec{X: 1, Z: 1}, Color{121, 121, 121}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Shader{
				Gradient:  flatGradient(t, Color{100, 100, 100}),
				Mode:      LightShading,
				Magnitude: 30,
				Light:     tt.light,
			}
			tri := tr
			if err := s.Shade(&tri); err != nil {
				t.Fatal(err)
			}
			if tri.Color != tt.want {
				t.Errorf("Shade() = %v, want %v", tri.Color, tt.want)
			}
			if tri.A != tr.A || tri.B != tr.B || tri.C != tr.C {
				t.Error("Shade() modified the geometry")
			}
		})
	}
}

func TestShader_LightKeepsHue(t *testing.T) {
	base := Color{40, 90, 160}
	s := &Shader{
		Gradient:  flatGradient(t, base),
		Mode:      LightShading,
		Magnitude: 25,
		Light:     r3.Vec{X: 1, Y: -1, Z: 2},
	}

	g, _ := NewGrid(300, 300, 40)
	rnd := rand.New(rand.NewSource(9))
	g.Raise(rnd, 40)
	g.Jitter(rnd, 10)

	for f := range g.Faces() {
		tr := g.Triangle(f)
		if err := s.Shade(&tr); err != nil {
			t.Fatal(err)
		}
		dr := int(tr.Color.R) - int(base.R)
		dg := int(tr.Color.G) - int(base.G)
		db := int(tr.Color.B) - int(base.B)
		if dr != dg || dg != db {
			t.Fatalf("light shading changed the hue: %v from %v", tr.Color, base)
		}
		if dr > 25 || dr < -25 {
			t.Fatalf("brightness shift %d larger than the magnitude", dr)
		}
	}
}

func TestShader_DegenerateSkipsLight(t *testing.T) {
	base := Color{10, 20, 30}

	tests := []struct {
		name  string
		tr    Triangle
		light r3.Vec
	}{
		{
			name:  "collinear vertices",
			tr:    Triangle{A: Vertex{X: 0}, B: Vertex{X: 1}, C: Vertex{X: 2}},
			light: r3.Vec{Z: 1},
		},
		{
			name:  "zero light",
			tr:    Triangle{A: Vertex{}, B: Vertex{X: 1}, C: Vertex{Y: 1}},
			light: r3.Vec{},
		},
		{
			name:  "nan light",
			tr:    Triangle{A: Vertex{}, B: Vertex{X: 1}, C: Vertex{Y: 1}},
			light: r3.Vec{X: math.NaN(), Z: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Shader{
				Gradient:  flatGradient(t, base),
				Mode:      LightShading,
				Magnitude: 50,
				Light:     tt.light,
			}
			tr := tt.tr
			if err := s.Shade(&tr); err != nil {
				t.Fatalf("Shade() returned error: %v", err)
			}
			if tr.Color != base {
				t.Errorf("Shade() = %v, want the unmodified gradient color %v", tr.Color, base)
			}
		})
	}
}

func TestShader_Noise(t *testing.T) {
	base := Color{128, 128, 128}
	s := &Shader{
		Gradient:  flatGradient(t, base),
		Mode:      NoiseShading,
		Magnitude: 10,
		Rand:      rand.New(rand.NewSource(1)),
	}

	hueChanged := false
	for i := 0; i < 200; i++ {
		tr := Triangle{A: Vertex{}, B: Vertex{X: 1}, C: Vertex{Y: 1}}
		if err := s.Shade(&tr); err != nil {
			t.Fatal(err)
		}
		for _, ch := range []uint8{tr.Color.R, tr.Color.G, tr.Color.B} {
			if d := int(ch) - 128; d < -10 || d > 10 {
				t.Fatalf("channel offset %d outside the magnitude", d)
			}
		}
		if tr.Color.R != tr.Color.G || tr.Color.G != tr.Color.B {
			hueChanged = true
		}
	}
	if !hueChanged {
		t.Error("noise shading never perturbed the channels independently")
	}
}

func TestShader_NoiseWithoutRand(t *testing.T) {
	base := Color{60, 60, 60}
	s := &Shader{
		Gradient:  flatGradient(t, base),
		Mode:      NoiseShading,
		Magnitude: 5,
	}
	for i := 0; i < 50; i++ {
		tr := Triangle{A: Vertex{}, B: Vertex{X: 1}, C: Vertex{Y: 1}}
		if err := s.Shade(&tr); err != nil {
			t.Fatal(err)
		}
		if d := int(tr.Color.R) - 60; d < -5 || d > 5 {
			t.Fatalf("channel offset %d outside the magnitude", d)
		}
	}
	if s.Rand == nil {
		t.Error("Shade did not set up a generator")
	}
}

func TestShader_NoGradient(t *testing.T) {
	s := &Shader{}
	tr := Triangle{}
	if err := s.Shade(&tr); err == nil {
		t.Fatal("expected an error without gradient")
	}
}
