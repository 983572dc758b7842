package style

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/termctl"
	"github.com/lixenwraith/termctl/ansi"
)

// Foreground returns a command that sets the foreground color.
func Foreground(c Color) termctl.Command {
	return fgCommand{c}
}

type fgCommand struct{ color Color }

func (c fgCommand) Ansi() string {
	return ansi.SGR(c.color.fg(nil)...)
}

// Background returns a command that sets the background color.
func Background(c Color) termctl.Command {
	return bgCommand{c}
}

type bgCommand struct{ color Color }

func (c bgCommand) Ansi() string {
	return ansi.SGR(c.color.bg(nil)...)
}

// UnderlineColor returns a command that sets the underline color
// independently of the foreground (SGR 58, a kitty/wezterm extension).
func UnderlineColor(c Color) termctl.Command {
	return ulCommand{c}
}

type ulCommand struct{ color Color }

func (c ulCommand) Ansi() string {
	return ansi.SGR(c.color.underline(nil)...)
}

// SetColors sets foreground and background in a single sequence.
func SetColors(fg, bg Color) termctl.Command {
	return colorsCommand{fg: fg, bg: bg}
}

type colorsCommand struct{ fg, bg Color }

func (c colorsCommand) Ansi() string {
	return ansi.SGR(c.bg.bg(c.fg.fg(nil))...)
}

// SetAttribute turns on one text attribute. Undefined attribute values
// panic at construction.
func SetAttribute(a Attribute) termctl.Command {
	mustValid(a)
	return attrCommand{a}
}

type attrCommand struct{ attr Attribute }

func (c attrCommand) Ansi() string {
	return ansi.SGR(c.attr.sgr())
}

// SetAttributes turns on every attribute in the set, in ascending bit
// order.
func SetAttributes(attrs Attributes) termctl.Command {
	return attrsCommand{attrs}
}

type attrsCommand struct{ attrs Attributes }

func (c attrsCommand) Ansi() string {
	var b strings.Builder
	for it := c.attrs.Iter(); ; {
		a, ok := it.Next()
		if !ok {
			break
		}
		b.WriteString(ansi.SGR(a.sgr()))
	}
	return b.String()
}

// ResetColor restores the terminal's default colors and attributes.
var ResetColor termctl.Command = resetColorCommand{}

type resetColorCommand struct{}

func (resetColorCommand) Ansi() string {
	return ansi.SGRReset
}

// Print writes its operands to the sink, formatted like fmt.Sprint. It
// exists so plain text can ride in a command batch; on a legacy console
// it is the one styled-output command that degrades to a raw write.
func Print(a ...any) termctl.Command {
	return printCommand{text: fmt.Sprint(a...)}
}

// Printf writes formatted text to the sink, like fmt.Sprintf.
func Printf(format string, a ...any) termctl.Command {
	return printCommand{text: fmt.Sprintf(format, a...)}
}

type printCommand struct{ text string }

func (c printCommand) Ansi() string {
	return c.text
}
