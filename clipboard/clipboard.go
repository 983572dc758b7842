// Package clipboard provides commands that write to the clipboard through
// OSC 52, the escape protocol modern emulators expose for clipboard
// access. The terminal performs the write itself, so it works over SSH
// where no display connection exists.
//
// There is no native fallback: legacy Windows consoles have no clipboard
// escape, so these commands stay ANSI-only.
package clipboard

import (
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/lixenwraith/termctl"
)

// Copy places text in the system clipboard.
func Copy(text string) termctl.Command {
	return copyCommand{seq: osc52.New(text)}
}

// CopyPrimary places text in the primary selection (X11 middle-click).
func CopyPrimary(text string) termctl.Command {
	return copyCommand{seq: osc52.New(text).Primary()}
}

type copyCommand struct{ seq osc52.Sequence }

func (c copyCommand) Ansi() string { return c.seq.String() }
