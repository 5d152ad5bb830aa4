package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/shanghaoqi/glyphicon/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	sheetPadding  = 24
	sheetGap      = 24
	labelHeight   = 32
	labelFontSize = 16
)

var (
	sheetBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	labelColor      = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
)

// Tile is one image on a contact sheet with the caption drawn under it.
type Tile struct {
	Image image.Image
	Label string
}

// ContactSheet lays tiles out left to right, bottom-aligned, each with its
// label centered below it.
func ContactSheet(tiles []Tile) *image.RGBA {
	widths := make([]int, len(tiles))
	rowHeight := 0
	for i, tile := range tiles {
		b := tile.Image.Bounds()
		widths[i] = b.Dx()
		if b.Dy() > rowHeight {
			rowHeight = b.Dy()
		}
	}
	cells := layout.Row(image.Pt(sheetPadding, sheetPadding), widths, rowHeight+labelHeight, sheetGap)
	content := layout.Union(cells)
	sheet := image.NewRGBA(image.Rect(0, 0, content.Max.X+sheetPadding, content.Max.Y+sheetPadding))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: sheetBackground}, image.Point{}, draw.Src)

	face := labelFace()
	for i, tile := range tiles {
		imageArea, labelArea := layout.SplitHorizontal(cells[i], rowHeight)
		b := tile.Image.Bounds()
		dst := image.Rect(imageArea.Min.X, imageArea.Max.Y-b.Dy(), imageArea.Max.X, imageArea.Max.Y)
		draw.Draw(sheet, dst, tile.Image, b.Min, draw.Src)
		drawLabel(sheet, tile.Label, labelArea, face)
	}
	return sheet
}

func labelFace() font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(tt, &truetype.Options{Size: labelFontSize, DPI: 72, Hinting: font.HintingFull})
}

// drawLabel centers text horizontally on area and places the baseline so
// the ascent fits inside it.
func drawLabel(dst *image.RGBA, text string, area image.Rectangle, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: &image.Uniform{C: labelColor}, Face: face}
	textWidth := drawer.MeasureString(text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	x := area.Min.X + (area.Dx()-textWidth)/2
	y := area.Min.Y + (area.Dy()+ascent)/2
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)
}
