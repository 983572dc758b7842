//go:build windows

package cursor

import (
	"io"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/lixenwraith/termctl/winapi"
)

// Saved cursor slot for SavePosition/RestorePosition, standing in for the
// terminal's single DECSC slot.
var saved struct {
	sync.Mutex
	pos   windows.Coord
	valid bool
}

func clamp16(v int) int16 {
	if v < 0 {
		return 0
	}
	if v > 0x7fff {
		return 0x7fff
	}
	return int16(v)
}

func (c moveTo) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveTo) ExecuteNative(_ io.Writer) error {
	return winapi.SetCursorPosition(clamp16(c.col), clamp16(c.row))
}

func (c moveToColumn) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveToColumn) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(clamp16(c.col), pos.Y)
}

func (c moveToRow) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveToRow) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(pos.X, clamp16(c.row))
}

func (c moveToNextLine) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveToNextLine) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(0, clamp16(int(pos.Y)+max(c.n, 0)))
}

func (c moveToPreviousLine) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveToPreviousLine) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(0, clamp16(int(pos.Y)-max(c.n, 0)))
}

func (c moveUp) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveUp) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(pos.X, clamp16(int(pos.Y)-max(c.n, 0)))
}

func (c moveDown) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveDown) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(pos.X, clamp16(int(pos.Y)+max(c.n, 0)))
}

func (c moveRight) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveRight) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(clamp16(int(pos.X)+max(c.n, 0)), pos.Y)
}

func (c moveLeft) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c moveLeft) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	return winapi.SetCursorPosition(clamp16(int(pos.X)-max(c.n, 0)), pos.Y)
}

func (savePosition) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (savePosition) ExecuteNative(_ io.Writer) error {
	pos, err := winapi.CursorPosition()
	if err != nil {
		return err
	}
	saved.Lock()
	saved.pos, saved.valid = pos, true
	saved.Unlock()
	return nil
}

func (restorePosition) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (restorePosition) ExecuteNative(_ io.Writer) error {
	saved.Lock()
	pos, ok := saved.pos, saved.valid
	saved.Unlock()
	if !ok {
		// Nothing saved yet; terminals ignore a bare DECRC too
		return nil
	}
	return winapi.SetCursorPosition(pos.X, pos.Y)
}

func (hide) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (hide) ExecuteNative(_ io.Writer) error {
	return winapi.SetCursorVisible(false)
}

func (show) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (show) ExecuteNative(_ io.Writer) error {
	return winapi.SetCursorVisible(true)
}

func (enableBlinking) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (enableBlinking) ExecuteNative(_ io.Writer) error {
	// The legacy console cursor always blinks
	return nil
}

func (disableBlinking) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (disableBlinking) ExecuteNative(_ io.Writer) error {
	return nil
}

func (c setStyle) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c setStyle) ExecuteNative(_ io.Writer) error {
	// The legacy console has one cursor shape
	return nil
}
