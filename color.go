package lowpoly

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque RGB color. Every operation returning a Color
// keeps the channels clamped to [0, 255].
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ParseHex parses a color given as "#rrggbb" or "rrggbb".
// SVG color keywords like "navy" or "tomato" are accepted as well.
func ParseHex(s string) (Color, error) {
	in := strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(in)]; ok {
		return Color{R: named.R, G: named.G, B: named.B}, nil
	}

	hex := strings.TrimPrefix(in, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w %q: expected 6 hex digits", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return Color{}, fmt.Errorf("%w %q: unexpected character %q", ErrInvalidColor, s, r)
		}
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()

	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is like ParseHex but panics if the color cannot be parsed.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColors parses every string of the list, failing on the first invalid entry.
func ParseColors(list []string) ([]Color, error) {
	colors := make([]Color, 0, len(list))
	for i, s := range list {
		c, err := ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("color #%d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Hex returns the color in lowercase "#rrggbb" form.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Shift changes the brightness of the color by adding the same
// amount to every channel. The hue is kept unless a channel saturates.
func (c Color) Shift(delta int) Color {
	return Color{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
	}
}

// ShiftRandom shifts the brightness by a single random amount
// drawn uniformly from [-magnitude, magnitude].
func (c Color) ShiftRandom(rnd *rand.Rand, magnitude int) Color {
	if magnitude <= 0 {
		return c
	}
	return c.Shift(randomOffset(rnd, magnitude))
}

// Jitter adds an independent random offset in [-magnitude, magnitude]
// to every channel, altering both hue and brightness.
func (c Color) Jitter(rnd *rand.Rand, magnitude int) Color {
	if magnitude <= 0 {
		return c
	}
	return Color{
		R: clampChannel(int(c.R) + randomOffset(rnd, magnitude)),
		G: clampChannel(int(c.G) + randomOffset(rnd, magnitude)),
		B: clampChannel(int(c.B) + randomOffset(rnd, magnitude)),
	}
}

// RandomColor returns a color with uniformly distributed channels.
func RandomColor(rnd *rand.Rand) Color {
	return Color{
		R: uint8(rnd.Intn(256)),
		G: uint8(rnd.Intn(256)),
		B: uint8(rnd.Intn(256)),
	}
}

// Lerp blends a and b channel by channel. t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = Clamp(t, 0, 1)
	mix := func(l, r uint8) uint8 {
		return clampChannel(int(math.Round((1-t)*float64(l) + t*float64(r))))
	}
	return Color{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
	}
}

// randomOffset returns an integer uniformly distributed in [-magnitude, magnitude].
func randomOffset(rnd *rand.Rand, magnitude int) int {
	return rnd.Intn(2*magnitude+1) - magnitude
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
