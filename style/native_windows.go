//go:build windows

package style

import (
	"errors"
	"io"

	"github.com/lixenwraith/termctl"
	"github.com/lixenwraith/termctl/winapi"
)

// console16 maps base-16 palette indices to console color nibbles. The
// console packs colors BGR plus an intensity bit, ANSI packs them RGB.
var console16 = [16]uint16{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// currentAttributes reads the live console attributes, latching the
// originals on first use so resets can return to them.
func currentAttributes() (uint16, error) {
	orig := winapi.OriginalAttributes()
	info, err := winapi.ScreenBufferInfo()
	if err != nil {
		return orig, err
	}
	return info.Attributes, nil
}

// applyFg replaces the foreground nibble of attrs for color c, quantizing
// extended colors down to the console's 16.
func applyFg(attrs uint16, c Color) uint16 {
	q := c.To16()
	if q.kind == kindDefault {
		return (attrs &^ winapi.FgMask) | (winapi.OriginalAttributes() & winapi.FgMask)
	}
	return (attrs &^ winapi.FgMask) | console16[q.index]
}

// applyBg replaces the background nibble of attrs for color c.
func applyBg(attrs uint16, c Color) uint16 {
	q := c.To16()
	if q.kind == kindDefault {
		return (attrs &^ winapi.BgMask) | (winapi.OriginalAttributes() & winapi.BgMask)
	}
	return (attrs &^ winapi.BgMask) | console16[q.index]<<4
}

// applyAttr maps an attribute onto console flags where an honest mapping
// exists; attributes the console cannot express leave attrs unchanged.
func applyAttr(attrs uint16, a Attribute) uint16 {
	switch a {
	case Reset:
		return winapi.OriginalAttributes()
	case Bold:
		return attrs | winapi.FgIntensity
	case NormalIntensity:
		return attrs &^ winapi.FgIntensity
	case Reverse:
		return attrs | winapi.ReverseVideo
	case NoReverse:
		return attrs &^ winapi.ReverseVideo
	case Underlined, DoubleUnderlined:
		return attrs | winapi.Underscore
	case NoUnderline:
		return attrs &^ winapi.Underscore
	default:
		return attrs
	}
}

func (c fgCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c fgCommand) ExecuteNative(_ io.Writer) error {
	attrs, err := currentAttributes()
	if err != nil {
		return err
	}
	return winapi.SetTextAttributes(applyFg(attrs, c.color))
}

func (c bgCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c bgCommand) ExecuteNative(_ io.Writer) error {
	attrs, err := currentAttributes()
	if err != nil {
		return err
	}
	return winapi.SetTextAttributes(applyBg(attrs, c.color))
}

func (c ulCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c ulCommand) ExecuteNative(_ io.Writer) error {
	return errors.New("underline color is not supported by the legacy console")
}

func (c colorsCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c colorsCommand) ExecuteNative(_ io.Writer) error {
	attrs, err := currentAttributes()
	if err != nil {
		return err
	}
	return winapi.SetTextAttributes(applyBg(applyFg(attrs, c.fg), c.bg))
}

func (c attrCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c attrCommand) ExecuteNative(_ io.Writer) error {
	attrs, err := currentAttributes()
	if err != nil {
		return err
	}
	return winapi.SetTextAttributes(applyAttr(attrs, c.attr))
}

func (c attrsCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c attrsCommand) ExecuteNative(_ io.Writer) error {
	attrs, err := currentAttributes()
	if err != nil {
		return err
	}
	for it := c.attrs.Iter(); ; {
		a, ok := it.Next()
		if !ok {
			break
		}
		attrs = applyAttr(attrs, a)
	}
	return winapi.SetTextAttributes(attrs)
}

func (resetColorCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (resetColorCommand) ExecuteNative(_ io.Writer) error {
	return winapi.SetTextAttributes(winapi.OriginalAttributes())
}

func (c printCommand) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c printCommand) ExecuteNative(w io.Writer) error {
	if _, err := io.WriteString(w, c.text); err != nil {
		return err
	}
	// Console calls cannot be queued, so the text must not sit in a buffer
	// while later attribute changes take effect
	if f, ok := w.(termctl.Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (sc StyledContent) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (sc StyledContent) ExecuteNative(w io.Writer) error {
	restore, err := currentAttributes()
	if err != nil {
		return err
	}

	styled := restore
	for it := sc.Style.Attributes.Iter(); ; {
		a, ok := it.Next()
		if !ok {
			break
		}
		styled = applyAttr(styled, a)
	}
	if sc.Style.Fg != Default {
		styled = applyFg(styled, sc.Style.Fg)
	}
	if sc.Style.Bg != Default {
		styled = applyBg(styled, sc.Style.Bg)
	}

	if err := winapi.SetTextAttributes(styled); err != nil {
		return err
	}
	if _, err := io.WriteString(w, sc.Content); err != nil {
		return err
	}
	// Flush before restoring so the text prints under the styled attributes
	if f, ok := w.(termctl.Flusher); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	return winapi.SetTextAttributes(restore)
}
