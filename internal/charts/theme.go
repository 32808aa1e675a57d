// Package charts renders the report figures as PNG images.
package charts

import "image/color"

// Print palette carried over from the published report: navy primary,
// steel secondary, light blue accents on white.
var (
	Navy  = color.RGBA{R: 0x00, G: 0x33, B: 0x66, A: 0xFF}
	Steel = color.RGBA{R: 0x1A, G: 0x6B, B: 0xAF, A: 0xFF}
	Light = color.RGBA{R: 0x4D, G: 0xA6, B: 0xE8, A: 0xFF}
	Gray  = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	Red   = color.RGBA{R: 0xC8, G: 0x10, B: 0x2E, A: 0xFF}
	Green = color.RGBA{R: 0x00, G: 0x70, B: 0x3C, A: 0xFF}

	// BandBlue is the translucent fill for forecast intervals.
	BandBlue = color.NRGBA{R: 0x4D, G: 0xA6, B: 0xE8, A: 0x50}
)

// Sequence is the ordered fill palette for categorical bars.
var Sequence = []color.Color{
	Navy,
	Steel,
	Light,
	color.RGBA{R: 0x6B, G: 0xB8, B: 0xD4, A: 0xFF},
	color.RGBA{R: 0xA8, G: 0xD5, B: 0xE8, A: 0xFF},
	color.RGBA{R: 0xD0, G: 0xEB, B: 0xF5, A: 0xFF},
}
