package lowpoly

import (
	"image"
	"image/color"
)

// prng is a Park-Miller minimal standard generator. It always starts from
// the same state, so the grain pattern is reproducible.
type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

func newPrng() *prng {
	return &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1,
		div:       1.0 / 0x7fffffff,
	}
}

// Grain applies a monochrome noise over the image, like a film grain filter.
// The amount is the maximum brightness deviation of a pixel.
func Grain(amount int, src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	rnd := newPrng()

	for x := 0; x < bounds.Dx(); x++ {
		for y := 0; y < bounds.Dy(); y++ {
			noise := int((rnd.next() - 0.5) * 2 * float64(amount))
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)

			dst.SetNRGBA(x, y, color.NRGBA{
				R: clampChannel(int(c.R) + noise),
				G: clampChannel(int(c.G) + noise),
				B: clampChannel(int(c.B) + noise),
				A: c.A,
			})
		}
	}
	return dst
}

func (p *prng) nextLongRand(seed int) int {
	lo := p.a * (seed & 0xffff)
	hi := p.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > p.m {
		lo &= p.m
		lo++
	}
	lo += hi >> 15
	if lo > p.m {
		lo &= p.m
		lo++
	}
	return lo
}

// next returns a pseudo random value in [0, 1).
func (p *prng) next() float64 {
	p.randomNum = p.nextLongRand(p.randomNum)
	return float64(p.randomNum) * p.div
}
