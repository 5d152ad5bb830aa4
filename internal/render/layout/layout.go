package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Row places cells of the given widths left to right starting at origin,
// separated by gapPx. Every cell is heightPx tall.
func Row(origin image.Point, widths []int, heightPx, gapPx int) []image.Rectangle {
	cells := make([]image.Rectangle, 0, len(widths))
	x := origin.X
	for i, w := range widths {
		if i > 0 {
			x += gapPx
		}
		if w < 0 {
			w = 0
		}
		cells = append(cells, image.Rect(x, origin.Y, x+w, origin.Y+heightPx))
		x += w
	}
	return cells
}

// Union returns the smallest rectangle containing all rects.
func Union(rects []image.Rectangle) image.Rectangle {
	var out image.Rectangle
	for i, r := range rects {
		if i == 0 {
			out = r
			continue
		}
		out = out.Union(r)
	}
	return out
}

// CenterIn returns a widthPx x heightPx rectangle centered in rect.
func CenterIn(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// Fit returns the largest rectangle with the aspect ratio of src that fits
// centered inside dst.
func Fit(dst image.Rectangle, src image.Rectangle) image.Rectangle {
	dst = Normalize(dst)
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || dst.Empty() {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	w, h := dst.Dx(), dst.Dx()*sh/sw
	if h > dst.Dy() {
		w, h = dst.Dy()*sw/sh, dst.Dy()
	}
	return CenterIn(dst, w, h)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
