package style

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// colorKind discriminates the three color families a terminal understands
type colorKind uint8

const (
	kindDefault colorKind = iota
	kindPalette
	kindRGB
)

// Color is a terminal color: the terminal's own default, one of the 256
// xterm palette entries, or a 24-bit RGB value. The zero value is
// Default, and == compares colors.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// Default leaves the color choice to the terminal.
var Default = Color{}

// Ansi returns the palette color with the given xterm index.
func Ansi(index uint8) Color {
	return Color{kind: kindPalette, index: index}
}

// RGB returns a 24-bit color. Terminals without truecolor support show an
// approximation; To256 and To16 quantize explicitly.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Hex parses a "#rrggbb" string into an RGB color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// The base 16 palette entries under their conventional names. Indices
// 0-7 are the dark variants, 8-15 the bright ones.
var (
	Black       = Ansi(0)
	DarkRed     = Ansi(1)
	DarkGreen   = Ansi(2)
	DarkYellow  = Ansi(3)
	DarkBlue    = Ansi(4)
	DarkMagenta = Ansi(5)
	DarkCyan    = Ansi(6)
	Grey        = Ansi(7)
	DarkGrey    = Ansi(8)
	Red         = Ansi(9)
	Green       = Ansi(10)
	Yellow      = Ansi(11)
	Blue        = Ansi(12)
	Magenta     = Ansi(13)
	Cyan        = Ansi(14)
	White       = Ansi(15)
)

// String describes the color for logs and errors.
func (c Color) String() string {
	switch c.kind {
	case kindPalette:
		return "Ansi(" + strconv.Itoa(int(c.index)) + ")"
	case kindRGB:
		return fmt.Sprintf("RGB(%d,%d,%d)", c.r, c.g, c.b)
	default:
		return "Default"
	}
}

// fg appends the foreground SGR parameters for the color. The base 16
// use the classic 30-37/90-97 codes for compatibility with terminals
// that predate 38;5;n.
func (c Color) fg(params []string) []string {
	switch c.kind {
	case kindPalette:
		if c.index < 8 {
			return append(params, strconv.Itoa(30+int(c.index)))
		}
		if c.index < 16 {
			return append(params, strconv.Itoa(90+int(c.index)-8))
		}
		return append(params, "38", "5", strconv.Itoa(int(c.index)))
	case kindRGB:
		return append(params, "38", "2",
			strconv.Itoa(int(c.r)), strconv.Itoa(int(c.g)), strconv.Itoa(int(c.b)))
	default:
		return append(params, "39")
	}
}

// bg appends the background SGR parameters for the color.
func (c Color) bg(params []string) []string {
	switch c.kind {
	case kindPalette:
		if c.index < 8 {
			return append(params, strconv.Itoa(40+int(c.index)))
		}
		if c.index < 16 {
			return append(params, strconv.Itoa(100+int(c.index)-8))
		}
		return append(params, "48", "5", strconv.Itoa(int(c.index)))
	case kindRGB:
		return append(params, "48", "2",
			strconv.Itoa(int(c.r)), strconv.Itoa(int(c.g)), strconv.Itoa(int(c.b)))
	default:
		return append(params, "49")
	}
}

// underline appends the underline color SGR parameters (SGR 58/59, a
// kitty/wezterm extension). The palette form has no classic variant.
func (c Color) underline(params []string) []string {
	switch c.kind {
	case kindPalette:
		return append(params, "58", "5", strconv.Itoa(int(c.index)))
	case kindRGB:
		return append(params, "58", "2",
			strconv.Itoa(int(c.r)), strconv.Itoa(int(c.g)), strconv.Itoa(int(c.b)))
	default:
		return append(params, "59")
	}
}
