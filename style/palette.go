package style

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color cube values for the 6x6x6 palette block (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale ramp index (232-255 = 24 shades)
const grayscaleStart = 232

// base16 holds nominal RGB values for the classic console colors. Real
// terminals theme these freely; the values only anchor distance math.
var base16 = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// xterm256 is the full extended palette in colorful's color space,
// populated at init
var xterm256 [256]colorful.Color

func init() {
	for i, c := range base16 {
		xterm256[i] = palColor(c[0], c[1], c[2])
	}

	i := 16
	for _, r := range cubeValues {
		for _, g := range cubeValues {
			for _, b := range cubeValues {
				xterm256[i] = palColor(r, g, b)
				i++
			}
		}
	}

	// Grayscale ramp: luminance 8, 18, ..., 238
	for k := 0; k < 24; k++ {
		v := uint8(8 + 10*k)
		xterm256[grayscaleStart+k] = palColor(v, v, v)
	}
}

func palColor(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// To256 quantizes an RGB color onto the extended palette. Palette and
// default colors pass through unchanged. Matching skips the base 16:
// terminals theme those freely, so only the cube and the grayscale ramp
// are predictable targets.
func (c Color) To256() Color {
	if c.kind != kindRGB {
		return c
	}
	return Ansi(nearest(palColor(c.r, c.g, c.b), 16, 256))
}

// To16 quantizes the color onto the base 16 console colors, the palette
// legacy Windows consoles can address.
func (c Color) To16() Color {
	switch c.kind {
	case kindPalette:
		if c.index < 16 {
			return c
		}
		return Ansi(nearest(xterm256[c.index], 0, 16))
	case kindRGB:
		return Ansi(nearest(palColor(c.r, c.g, c.b), 0, 16))
	default:
		return c
	}
}

// nearest returns the palette index in [lo, hi) with the smallest
// perceptual distance to the target.
func nearest(target colorful.Color, lo, hi int) uint8 {
	best := lo
	bestDist := math.MaxFloat64
	for i := lo; i < hi; i++ {
		if d := target.DistanceHSLuv(xterm256[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}
