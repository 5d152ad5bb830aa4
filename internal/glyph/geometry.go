package glyph

import "image"

// Point is a canvas coordinate. Diamond centers can land between pixels,
// so points are kept as floats.
type Point struct {
	X float64
	Y float64
}

// Bar is one side of the broken border, spanning Min (inclusive) to Max (exclusive).
type Bar struct {
	Min image.Point
	Max image.Point
}

// Rect returns the bar as an image.Rectangle.
func (b Bar) Rect() image.Rectangle {
	return image.Rectangle{Min: b.Min, Max: b.Max}
}

// Diamond is a rhombus with vertices Radius away from Center along both axes.
type Diamond struct {
	Center Point
	Radius int
}

// Points returns the vertices in drawing order: top, right, bottom, left.
func (d Diamond) Points() [4]Point {
	cx, cy, r := d.Center.X, d.Center.Y, float64(d.Radius)
	return [4]Point{
		{X: cx, Y: cy - r},
		{X: cx + r, Y: cy},
		{X: cx, Y: cy + r},
		{X: cx - r, Y: cy},
	}
}

// Geometry is the complete pixel-space description of the glyph on a
// Size x Size canvas.
type Geometry struct {
	Size  int
	Unit  int
	LineW int

	// Bounds is the outer rectangle of the border.
	Bounds image.Rectangle

	Top    Bar
	Left   Bar
	Bottom Bar
	Right  Bar

	Diamonds [2]Diamond
}

// Compute derives the glyph geometry for a square canvas of the given size.
//
// All lengths are multiples of size/10, rounded down. Sizes that are not a
// multiple of 10 keep the truncation as-is; sizes below 10 yield zero-area
// shapes. The caller is expected to reject non-positive sizes.
func Compute(size int) Geometry {
	unit := size / 10
	width := 8 * unit
	height := 5 * unit

	left := (size - width) / 2
	top := (size - height) / 2
	right := left + width
	bottom := top + height

	// The border thickness is also the side of the notch.
	lineW := unit

	g := Geometry{
		Size:   size,
		Unit:   unit,
		LineW:  lineW,
		Bounds: image.Rect(left, top, right, bottom),
		Top:    Bar{Min: image.Pt(left, top), Max: image.Pt(right, top+lineW)},
		Left:   Bar{Min: image.Pt(left, top), Max: image.Pt(left+lineW, bottom)},
		Bottom: Bar{Min: image.Pt(left, bottom-lineW), Max: image.Pt(right-lineW, bottom)},
		Right:  Bar{Min: image.Pt(right-lineW, top), Max: image.Pt(right, bottom-lineW)},
	}

	radius := lineW / 2
	innerCX := float64((left + right) / 2)
	innerCY := float64((top + bottom) / 2)
	spacing := float64(unit) * 1.2
	g.Diamonds[0] = Diamond{Center: Point{X: innerCX - spacing, Y: innerCY}, Radius: radius}
	g.Diamonds[1] = Diamond{Center: Point{X: innerCX + spacing, Y: innerCY}, Radius: radius}
	return g
}

// Bars returns the border bars in drawing order: top, left, bottom, right.
func (g Geometry) Bars() [4]Bar {
	return [4]Bar{g.Top, g.Left, g.Bottom, g.Right}
}

// Notch returns the square left uncovered at the bottom-right corner.
func (g Geometry) Notch() image.Rectangle {
	b := g.Bounds
	return image.Rect(b.Max.X-g.LineW, b.Max.Y-g.LineW, b.Max.X, b.Max.Y)
}

// Contains reports whether (x, y) lies on a bar or inside a diamond.
// Bars are half-open; diamond edges count as inside.
func (g Geometry) Contains(x, y float64) bool {
	for _, bar := range g.Bars() {
		if x >= float64(bar.Min.X) && x < float64(bar.Max.X) &&
			y >= float64(bar.Min.Y) && y < float64(bar.Max.Y) {
			return true
		}
	}
	for _, d := range g.Diamonds {
		if d.Radius <= 0 {
			continue
		}
		if abs(x-d.Center.X)+abs(y-d.Center.Y) <= float64(d.Radius) {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
