package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/shanghaoqi/glyphicon/internal/glyph"
)

func TestRenderGlyphPixels(t *testing.T) {
	img := RenderGlyph(10)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 10x10", b)
	}
	g := glyph.Compute(10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			onBar := false
			for _, bar := range g.Bars() {
				if image.Pt(x, y).In(bar.Rect()) {
					onBar = true
				}
			}
			want := Background
			if onBar {
				want = Gold
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderGlyphDiamonds(t *testing.T) {
	img := RenderGlyph(100)
	g := glyph.Compute(100)
	for _, d := range g.Diamonds {
		x, y := int(d.Center.X), int(d.Center.Y)
		if got := img.RGBAAt(x, y); got != Gold {
			t.Errorf("diamond center (%d,%d) = %v, want gold", x, y, got)
		}
	}
	notch := g.Notch()
	if got := img.RGBAAt(notch.Min.X, notch.Min.Y); got != Background {
		t.Errorf("notch pixel = %v, want background", got)
	}
}

func TestDownsampleFromMaster(t *testing.T) {
	master := RenderMaster()
	if b := master.Bounds(); b.Dx() != MasterSize || b.Dy() != MasterSize {
		t.Fatalf("master bounds = %v", b)
	}
	for _, size := range []int{16, 32, 48, 64, 128, 256, 512} {
		img := Resample(master, size)
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("Resample(%d) bounds = %v", size, b)
		}
		if img == master {
			t.Errorf("Resample(%d) returned the master", size)
		}
	}
	if Resample(master, MasterSize) != master {
		t.Error("Resample at master size should return the master itself")
	}
}

func TestCanvasIgnoresOutOfRangeShapes(t *testing.T) {
	c := NewCanvas(4)
	c.FillBackground(Background)
	c.FillRect(image.Rect(10, 10, 20, 20), Gold)
	c.FillPolygon([]glyph.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, Gold)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.Image().RGBAAt(x, y); got != Background {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestContactSheet(t *testing.T) {
	tiles := []Tile{
		{Image: RenderGlyph(16), Label: "16x16"},
		{Image: RenderGlyph(32), Label: "32x32"},
	}
	sheet := ContactSheet(tiles)
	want := image.Rect(0, 0, 24+16+24+32+24, 24+32+32+24)
	if sheet.Bounds() != want {
		t.Fatalf("sheet bounds = %v, want %v", sheet.Bounds(), want)
	}
	// Second tile is bottom-aligned at the top of its label strip.
	if got := sheet.RGBAAt(24+16+24, 24); got != Background {
		t.Errorf("tile corner = %v, want glyph background", got)
	}
	if got := sheet.RGBAAt(0, 0); got != sheetBackground {
		t.Errorf("sheet corner = %v, want sheet background", got)
	}
}

func TestComposeFrameLetterboxes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	frame := composeFrame(image.Pt(40, 20), src)
	if got := frame.RGBAAt(0, 0); got != Background {
		t.Errorf("letterbox pixel = %v, want background", got)
	}
	if got := frame.RGBAAt(20, 10); got.R < 0xF0 {
		t.Errorf("center pixel = %v, want white", got)
	}
}

func TestQRCodePNG(t *testing.T) {
	data, err := QRCodePNG("http://127.0.0.1:8080/", 0)
	if err != nil {
		t.Fatalf("QRCodePNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != defaultQRCodeSizePx {
		t.Errorf("QR width = %d, want %d", b.Dx(), defaultQRCodeSizePx)
	}
	if _, err := QRCodePNG("", 64); err == nil {
		t.Error("expected error for empty payload")
	}
}
