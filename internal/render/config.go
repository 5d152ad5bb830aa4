package render

import "image/color"

// Glyph colors and the master canvas size.
var (
	// Gold fills every bar and diamond.
	Gold = color.RGBA{R: 241, G: 196, B: 15, A: 0xFF} // #f1c40f
	// Background is painted before any shape.
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// MasterSize is the edge length of the single authoritative render that
// every smaller output is downsampled from.
const MasterSize = 1024
