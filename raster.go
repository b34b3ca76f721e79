package lowpoly

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
)

// Image is a Renderer rasterizing the mesh into a bitmap.
type Image struct {
	Format  Format
	Quality int // JPEG quality, defaults to jpeg.DefaultQuality
	Grain   int // amount of film grain applied on the final image

	w        io.Writer
	ctx      *gg.Context
	vertical bool
}

// NewImage returns a raster renderer encoding the final image in the given format into w.
func NewImage(w io.Writer, f Format) *Image {
	return &Image{
		Format: f,
		w:      w,
	}
}

// BeginDocument allocates the drawing context.
func (im *Image) BeginDocument(width, height int) {
	im.ctx = gg.NewContext(width, height)
	im.ctx.SetRGB255(255, 255, 255)
	im.ctx.Clear()
}

// SetBackgroundGradient paints the whole canvas with a linear gradient.
func (im *Image) SetBackgroundGradient(stops []Color, o Orientation) {
	im.vertical = o == Vertical
	if len(stops) == 0 {
		return
	}

	w, h := float64(im.ctx.Width()), float64(im.ctx.Height())
	var grad gg.Gradient
	if im.vertical {
		grad = gg.NewLinearGradient(0, 0, 0, h)
	} else {
		grad = gg.NewLinearGradient(0, 0, w, 0)
	}
	for i, offset := range stopOffsets(len(stops)) {
		grad.AddColorStop(offset/100, stops[i])
	}
	if len(stops) == 1 {
		grad.AddColorStop(1, stops[0])
	}

	im.ctx.Push()
	im.ctx.SetFillStyle(grad)
	im.ctx.DrawRectangle(0, 0, w, h)
	im.ctx.Fill()
	im.ctx.Pop()
}

// DrawTriangle fills the triangle with a solid color.
func (im *Image) DrawTriangle(p1, p2, p3 Vertex, fill Color) {
	im.ctx.NewSubPath()
	im.ctx.MoveTo(im.project(p1))
	im.ctx.LineTo(im.project(p2))
	im.ctx.LineTo(im.project(p3))
	im.ctx.ClosePath()

	im.ctx.SetColor(fill)
	im.ctx.Fill()
}

// Finish encodes the image into the underlying writer.
func (im *Image) Finish() error {
	if im.ctx == nil {
		return fmt.Errorf("image: document was never started")
	}

	var img image.Image = im.ctx.Image()
	if im.Grain > 0 {
		img = Grain(im.Grain, img)
	}

	var err error
	switch im.Format {
	case FormatPNG:
		err = im.encodePNG(img)
	case FormatJPEG:
		quality := im.Quality
		if quality <= 0 {
			quality = jpeg.DefaultQuality
		}
		err = jpeg.Encode(im.w, img, &jpeg.Options{Quality: quality})
	case FormatBMP:
		err = bmp.Encode(im.w, img)
	default:
		return fmt.Errorf("image: unsupported raster format %v", im.Format)
	}
	if err != nil {
		return fmt.Errorf("image: unable to encode %v: %w", im.Format, err)
	}
	return nil
}

func (im *Image) encodePNG(img image.Image) error {
	if im.Grain > 0 {
		out := gg.NewContextForImage(img)
		return out.EncodePNG(im.w)
	}
	return im.ctx.EncodePNG(im.w)
}

// project maps a mesh space vertex onto the canvas.
func (im *Image) project(v Vertex) (float64, float64) {
	if im.vertical {
		return v.Y, v.X
	}
	return v.X, v.Y
}
