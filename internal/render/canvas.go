package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/shanghaoqi/glyphicon/internal/glyph"
	"golang.org/x/image/vector"
)

// Canvas is a square RGBA Rasterizer. Rectangles are filled on whole pixels,
// polygons are anti-aliased.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(size int) *Canvas {
	if size < 0 {
		size = 0
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

func (c *Canvas) Size() int { return c.img.Bounds().Dx() }

// Image returns the backing image. Further drawing on c is visible through it.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) FillBackground(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	rect = rect.Canon().Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{C: col}, image.Point{}, draw.Over)
}

func (c *Canvas) FillPolygon(points []glyph.Point, col color.Color) {
	if len(points) < 3 || c.img.Bounds().Empty() {
		return
	}
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(c.img, b, &image.Uniform{C: col}, image.Point{})
}
