package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	"github.com/shanghaoqi/glyphicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Display shows a finished image somewhere a person can look at it.
type Display interface {
	Show(img image.Image) error
}

// NoopDisplay discards images.
type NoopDisplay struct{}

func (NoopDisplay) Show(img image.Image) error { return nil }

// FBDisplay shows images on a Linux framebuffer device, scaled to fit and
// letterboxed on the glyph background.
type FBDisplay struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewFBDisplay(device string) *FBDisplay {
	if device == "" {
		device = "/dev/fb0"
	}
	return &FBDisplay{Device: device}
}

func (d *FBDisplay) Show(img image.Image) error {
	dev, err := fb.Open(d.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", d.Device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if d.Logger != nil {
		d.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	frame := composeFrame(bounds.Size(), img)
	blitToFB(dev, frame)
	if d.Logger != nil {
		d.Logger.Infof("fb", "frame shown")
	}
	return nil
}

// composeFrame scales img to fit a frame of the given size.
func composeFrame(size image.Point, img image.Image) *image.RGBA {
	frame := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	target := layout.Fit(frame.Bounds(), img.Bounds())
	if !target.Empty() {
		xdraw.ApproxBiLinear.Scale(frame, target, img, img.Bounds(), xdraw.Src, nil)
	}
	return frame
}

// blitToFB copies frame onto the device pixel by pixel, forcing opaque alpha.
func blitToFB(dev *fb.Device, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
