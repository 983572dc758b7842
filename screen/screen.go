// Package screen provides commands that manage the terminal display:
// clearing, scrolling, the alternate screen, line wrap, synchronized
// updates, the window title and the screen size.
package screen

import (
	"io"

	"github.com/lixenwraith/termctl"
	"github.com/lixenwraith/termctl/ansi"
)

// ClearType selects which part of the display Clear erases.
type ClearType uint8

const (
	// All erases the entire visible screen
	All ClearType = iota
	// Purge erases the scrollback buffer
	Purge
	// FromCursorDown erases from the cursor to the end of the screen
	FromCursorDown
	// FromCursorUp erases from the cursor to the start of the screen
	FromCursorUp
	// CurrentLine erases the line under the cursor
	CurrentLine
	// UntilNewLine erases from the cursor to the end of the line
	UntilNewLine
)

// Clear erases part of the display. The cursor does not move.
func Clear(ct ClearType) termctl.Command {
	return clear{ct}
}

type clear struct{ what ClearType }

func (c clear) Ansi() string {
	switch c.what {
	case Purge:
		return ansi.EraseScrollback
	case FromCursorDown:
		return ansi.EraseDown
	case FromCursorUp:
		return ansi.EraseUp
	case CurrentLine:
		return ansi.EraseLine
	case UntilNewLine:
		return ansi.EraseLineRight
	default:
		return ansi.EraseScreen
	}
}

// ScrollUp scrolls the display content up n rows; new rows appear at the
// bottom.
func ScrollUp(n int) termctl.Command {
	return scrollUp{n}
}

type scrollUp struct{ n int }

func (c scrollUp) Ansi() string { return ansi.ScrollUp(c.n) }

// ScrollDown scrolls the display content down n rows; new rows appear at
// the top.
func ScrollDown(n int) termctl.Command {
	return scrollDown{n}
}

type scrollDown struct{ n int }

func (c scrollDown) Ansi() string { return ansi.ScrollDown(c.n) }

// SetSize asks the terminal to resize its text area. Many emulators
// ignore the request.
func SetSize(cols, rows int) termctl.Command {
	return setSize{cols: cols, rows: rows}
}

type setSize struct{ cols, rows int }

func (c setSize) Ansi() string { return ansi.Resize(c.cols, c.rows) }

// SetTitle sets the terminal window title.
func SetTitle(title string) termctl.Command {
	return setTitle{title}
}

type setTitle struct{ title string }

func (c setTitle) Ansi() string { return ansi.WindowTitle(c.title) }

// EnterAlternateScreen switches to the alternate screen buffer, leaving
// the main screen and its scrollback untouched for LeaveAlternateScreen.
var EnterAlternateScreen termctl.Command = enterAltScreen{}

type enterAltScreen struct{}

func (enterAltScreen) Ansi() string { return ansi.AltScreenEnter }

// LeaveAlternateScreen switches back to the main screen buffer.
var LeaveAlternateScreen termctl.Command = leaveAltScreen{}

type leaveAltScreen struct{}

func (leaveAltScreen) Ansi() string { return ansi.AltScreenExit }

// EnableLineWrap restores automatic wrapping at the right edge.
var EnableLineWrap termctl.Command = enableWrap{}

type enableWrap struct{}

func (enableWrap) Ansi() string { return ansi.WrapOn }

// DisableLineWrap pins the cursor at the right edge instead of wrapping,
// so full-width writes cannot scroll the screen.
var DisableLineWrap termctl.Command = disableWrap{}

type disableWrap struct{}

func (disableWrap) Ansi() string { return ansi.WrapOff }

// BeginSynchronizedUpdate asks the emulator to hold rendering until
// EndSynchronizedUpdate, eliminating tearing during a redraw burst.
// Emulators without mode 2026 ignore it.
var BeginSynchronizedUpdate termctl.Command = beginSync{}

type beginSync struct{}

func (beginSync) Ansi() string { return ansi.SyncOn }

// EndSynchronizedUpdate releases a pending synchronized update.
var EndSynchronizedUpdate termctl.Command = endSync{}

type endSync struct{}

func (endSync) Ansi() string { return ansi.SyncOff }

// EmergencyReset writes the sequences that put a wrecked terminal back
// into a usable state: cursor visible, main screen buffer, default
// attributes, wrapping on, then a full reset. Call it from panic or
// signal handlers where the normal restore commands may never run.
// Writes are best effort.
func EmergencyReset(w io.Writer) {
	io.WriteString(w, ansi.CursorShow)
	io.WriteString(w, ansi.AltScreenExit)
	io.WriteString(w, ansi.SGRReset)
	io.WriteString(w, ansi.WrapOn)
	io.WriteString(w, ansi.RIS)
	if f, ok := w.(termctl.Flusher); ok {
		f.Flush()
	}
}
