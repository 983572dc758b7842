// Package ansi defines the escape sequences emitted by the command layer.
//
// Fixed sequences are plain string constants; parameterized forms are built
// by small helpers. Everything here is VT100/xterm vocabulary shared by the
// cursor, screen and style packages.
package ansi

import (
	"strconv"
	"strings"
)

// Sequence introducers and terminators
const (
	ESC = "\x1b"
	CSI = "\x1b[" // Control Sequence Introducer
	OSC = "\x1b]" // Operating System Command
	BEL = "\x07"
)

// Cursor control
const (
	CursorHide     = CSI + "?25l"
	CursorShow     = CSI + "?25h"
	CursorBlinkOn  = CSI + "?12h"
	CursorBlinkOff = CSI + "?12l"
	CursorSave     = ESC + "7" // DECSC
	CursorRestore  = ESC + "8" // DECRC
)

// Screen modes
const (
	AltScreenEnter = CSI + "?1049h"
	AltScreenExit  = CSI + "?1049l"
	// DECAWM: ?7l keeps the cursor pinned at the right edge instead of
	// wrapping, so writes to the bottom-right corner do not scroll
	WrapOn   = CSI + "?7h"
	WrapOff  = CSI + "?7l"
	SyncOn   = CSI + "?2026h"
	SyncOff  = CSI + "?2026l"
	SGRReset = CSI + "0m"
	RIS      = ESC + "c" // Reset to Initial State (emergency)
)

// Erase sequences
const (
	EraseDown       = CSI + "J"
	EraseUp         = CSI + "1J"
	EraseScreen     = CSI + "2J"
	EraseScrollback = CSI + "3J"
	EraseLine       = CSI + "2K"
	EraseLineRight  = CSI + "K"
)

// param formats one numeric parameter. Escape sequences cannot express
// negative values, so negatives clamp to zero.
func param(n int) string {
	return strconv.Itoa(max(n, 0))
}

// CursorPosition moves the cursor to column col and row row (0-indexed
// input, negatives clamp to the origin)
func CursorPosition(col, row int) string {
	return CSI + strconv.Itoa(max(row, 0)+1) + ";" + strconv.Itoa(max(col, 0)+1) + "H"
}

// CursorColumn moves the cursor to column n on the current row (0-indexed input)
func CursorColumn(n int) string {
	return CSI + strconv.Itoa(max(n, 0)+1) + "G"
}

// CursorRow moves the cursor to row n in the current column (0-indexed input)
func CursorRow(n int) string {
	return CSI + strconv.Itoa(max(n, 0)+1) + "d"
}

// CursorUp moves the cursor up n rows
func CursorUp(n int) string {
	return CSI + param(n) + "A"
}

// CursorDown moves the cursor down n rows
func CursorDown(n int) string {
	return CSI + param(n) + "B"
}

// CursorForward moves the cursor right n columns
func CursorForward(n int) string {
	return CSI + param(n) + "C"
}

// CursorBack moves the cursor left n columns
func CursorBack(n int) string {
	return CSI + param(n) + "D"
}

// CursorNextLine moves the cursor to the start of the line n rows down
func CursorNextLine(n int) string {
	return CSI + param(n) + "E"
}

// CursorPrevLine moves the cursor to the start of the line n rows up
func CursorPrevLine(n int) string {
	return CSI + param(n) + "F"
}

// CursorStyle selects a DECSCUSR cursor shape (0-6)
func CursorStyle(n int) string {
	return CSI + param(n) + " q"
}

// ScrollUp scrolls the viewport content up n rows
func ScrollUp(n int) string {
	return CSI + param(n) + "S"
}

// ScrollDown scrolls the viewport content down n rows
func ScrollDown(n int) string {
	return CSI + param(n) + "T"
}

// Resize requests an XTWINOPS resize of the text area to cols x rows
func Resize(cols, rows int) string {
	return CSI + "8;" + param(rows) + ";" + param(cols) + "t"
}

// WindowTitle sets the terminal window title
func WindowTitle(title string) string {
	return OSC + "0;" + title + BEL
}

// SGR builds a Select Graphic Rendition sequence from raw parameters
func SGR(params ...string) string {
	return CSI + strings.Join(params, ";") + "m"
}
