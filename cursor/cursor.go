// Package cursor provides commands that position, show and shape the
// terminal cursor. Coordinates are zero-based, column first.
package cursor

import (
	"github.com/lixenwraith/termctl"
	"github.com/lixenwraith/termctl/ansi"
)

// MoveTo moves the cursor to the given column and row.
func MoveTo(col, row int) termctl.Command {
	return moveTo{col: col, row: row}
}

type moveTo struct{ col, row int }

func (c moveTo) Ansi() string { return ansi.CursorPosition(c.col, c.row) }

// MoveToColumn moves the cursor to column col on the current row.
func MoveToColumn(col int) termctl.Command {
	return moveToColumn{col}
}

type moveToColumn struct{ col int }

func (c moveToColumn) Ansi() string { return ansi.CursorColumn(c.col) }

// MoveToRow moves the cursor to row row in the current column.
func MoveToRow(row int) termctl.Command {
	return moveToRow{row}
}

type moveToRow struct{ row int }

func (c moveToRow) Ansi() string { return ansi.CursorRow(c.row) }

// MoveToNextLine moves the cursor to the start of the line n rows down.
func MoveToNextLine(n int) termctl.Command {
	return moveToNextLine{n}
}

type moveToNextLine struct{ n int }

func (c moveToNextLine) Ansi() string { return ansi.CursorNextLine(c.n) }

// MoveToPreviousLine moves the cursor to the start of the line n rows up.
func MoveToPreviousLine(n int) termctl.Command {
	return moveToPreviousLine{n}
}

type moveToPreviousLine struct{ n int }

func (c moveToPreviousLine) Ansi() string { return ansi.CursorPrevLine(c.n) }

// MoveUp moves the cursor up n rows, keeping the column.
func MoveUp(n int) termctl.Command {
	return moveUp{n}
}

type moveUp struct{ n int }

func (c moveUp) Ansi() string { return ansi.CursorUp(c.n) }

// MoveDown moves the cursor down n rows, keeping the column.
func MoveDown(n int) termctl.Command {
	return moveDown{n}
}

type moveDown struct{ n int }

func (c moveDown) Ansi() string { return ansi.CursorDown(c.n) }

// MoveRight moves the cursor right n columns.
func MoveRight(n int) termctl.Command {
	return moveRight{n}
}

type moveRight struct{ n int }

func (c moveRight) Ansi() string { return ansi.CursorForward(c.n) }

// MoveLeft moves the cursor left n columns.
func MoveLeft(n int) termctl.Command {
	return moveLeft{n}
}

type moveLeft struct{ n int }

func (c moveLeft) Ansi() string { return ansi.CursorBack(c.n) }

// SavePosition records the cursor position in the terminal (DECSC).
// Most terminals keep a single slot; a later RestorePosition returns to it.
var SavePosition termctl.Command = savePosition{}

type savePosition struct{}

func (savePosition) Ansi() string { return ansi.CursorSave }

// RestorePosition returns the cursor to the last saved position (DECRC).
var RestorePosition termctl.Command = restorePosition{}

type restorePosition struct{}

func (restorePosition) Ansi() string { return ansi.CursorRestore }

// Hide makes the cursor invisible until Show.
var Hide termctl.Command = hide{}

type hide struct{}

func (hide) Ansi() string { return ansi.CursorHide }

// Show makes the cursor visible.
var Show termctl.Command = show{}

type show struct{}

func (show) Ansi() string { return ansi.CursorShow }

// EnableBlinking asks the terminal to blink the cursor.
var EnableBlinking termctl.Command = enableBlinking{}

type enableBlinking struct{}

func (enableBlinking) Ansi() string { return ansi.CursorBlinkOn }

// DisableBlinking asks the terminal to stop blinking the cursor.
var DisableBlinking termctl.Command = disableBlinking{}

type disableBlinking struct{}

func (disableBlinking) Ansi() string { return ansi.CursorBlinkOff }

// Style selects the cursor shape drawn by the terminal (DECSCUSR).
type Style uint8

const (
	DefaultUserShape Style = iota
	BlinkingBlock
	SteadyBlock
	BlinkingUnderscore
	SteadyUnderscore
	BlinkingBar
	SteadyBar
)

// SetStyle changes the cursor shape.
func SetStyle(s Style) termctl.Command {
	return setStyle{s}
}

type setStyle struct{ style Style }

func (c setStyle) Ansi() string { return ansi.CursorStyle(int(c.style)) }
