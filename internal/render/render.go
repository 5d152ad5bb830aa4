package render

import (
	"image"
	"image/color"

	"github.com/shanghaoqi/glyphicon/internal/glyph"
	xdraw "golang.org/x/image/draw"
)

// Rasterizer is the drawing backend the glyph geometry is handed to.
type Rasterizer interface {
	// Size returns the canvas edge length in pixels.
	Size() int

	FillBackground(c color.Color)
	FillRect(rect image.Rectangle, c color.Color)
	FillPolygon(points []glyph.Point, c color.Color)
}

// Draw paints the glyph described by g onto r: background first, then the
// four border bars, then both diamonds.
func Draw(r Rasterizer, g glyph.Geometry) {
	r.FillBackground(Background)
	for _, bar := range g.Bars() {
		r.FillRect(bar.Rect(), Gold)
	}
	for _, d := range g.Diamonds {
		pts := d.Points()
		r.FillPolygon(pts[:], Gold)
	}
}

// RenderGlyph computes the geometry for size and rasterizes it onto a new
// size x size canvas.
func RenderGlyph(size int) *image.RGBA {
	c := NewCanvas(size)
	Draw(c, glyph.Compute(size))
	return c.Image()
}

// RenderMaster renders the glyph at MasterSize.
func RenderMaster() *image.RGBA { return RenderGlyph(MasterSize) }

// Downsample scales src to a size x size image with a Catmull-Rom filter.
func Downsample(src image.Image, size int) *image.RGBA {
	if size < 0 {
		size = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Resample returns master unchanged when it already has the requested edge
// length, otherwise a downsampled copy.
func Resample(master *image.RGBA, size int) *image.RGBA {
	b := master.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return master
	}
	return Downsample(master, size)
}
