//go:build windows

package screen

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/lixenwraith/termctl/winapi"
)

// Alternate screen buffer handle, live between enter and leave
var altScreen struct {
	sync.Mutex
	handle windows.Handle
	active bool
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

func (c clear) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c clear) ExecuteNative(_ io.Writer) error {
	info, err := winapi.ScreenBufferInfo()
	if err != nil {
		return err
	}

	width := uint32(uint16(info.Size.X))
	height := uint32(uint16(info.Size.Y))
	x := uint32(uint16(info.CursorPosition.X))
	y := uint32(uint16(info.CursorPosition.Y))

	var start windows.Coord
	var count uint32
	switch c.what {
	case FromCursorDown:
		start = info.CursorPosition
		count = width*(height-y) - x
	case FromCursorUp:
		start = windows.Coord{}
		count = width*y + x + 1
	case CurrentLine:
		start = windows.Coord{X: 0, Y: info.CursorPosition.Y}
		count = width
	case UntilNewLine:
		start = info.CursorPosition
		count = width - x
	default:
		// All and Purge; the legacy console has no scrollback to purge
		start = windows.Coord{}
		count = width * height
	}
	return winapi.FillOutput(start, count)
}

func (c scrollUp) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c scrollUp) ExecuteNative(_ io.Writer) error {
	if c.n <= 0 {
		return nil
	}
	info, err := winapi.ScreenBufferInfo()
	if err != nil {
		return err
	}
	win := info.Window
	dest := windows.Coord{X: win.Left, Y: win.Top - clamp16(c.n)}
	return winapi.ScrollBuffer(win, dest)
}

func (c scrollDown) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c scrollDown) ExecuteNative(_ io.Writer) error {
	if c.n <= 0 {
		return nil
	}
	info, err := winapi.ScreenBufferInfo()
	if err != nil {
		return err
	}
	win := info.Window
	dest := windows.Coord{X: win.Left, Y: win.Top + clamp16(c.n)}
	return winapi.ScrollBuffer(win, dest)
}

func (c setSize) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c setSize) ExecuteNative(_ io.Writer) error {
	if c.cols < 1 || c.rows < 1 {
		return fmt.Errorf("resize to %dx%d: dimensions must be positive", c.cols, c.rows)
	}
	info, err := winapi.ScreenBufferInfo()
	if err != nil {
		return err
	}

	cols := clamp16(c.cols)
	rows := clamp16(c.rows)
	win := info.Window

	// Grow the buffer first so the new window fits inside it
	bufX, bufY := info.Size.X, info.Size.Y
	grow := false
	if bufX < win.Left+cols {
		bufX = win.Left + cols
		grow = true
	}
	if bufY < win.Top+rows {
		bufY = win.Top + rows
		grow = true
	}
	if grow {
		if err := winapi.SetBufferSize(bufX, bufY); err != nil {
			return err
		}
	}

	return winapi.SetWindowInfo(windows.SmallRect{
		Left:   win.Left,
		Top:    win.Top,
		Right:  win.Left + cols - 1,
		Bottom: win.Top + rows - 1,
	})
}

func (c setTitle) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (c setTitle) ExecuteNative(_ io.Writer) error {
	return winapi.SetTitle(c.title)
}

func (enterAltScreen) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (enterAltScreen) ExecuteNative(_ io.Writer) error {
	altScreen.Lock()
	defer altScreen.Unlock()
	if altScreen.active {
		return nil
	}

	h, err := winapi.CreateScreenBuffer()
	if err != nil {
		return err
	}
	if err := winapi.SetActiveScreenBuffer(h); err != nil {
		windows.CloseHandle(h)
		return err
	}
	altScreen.handle, altScreen.active = h, true
	return nil
}

func (leaveAltScreen) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (leaveAltScreen) ExecuteNative(_ io.Writer) error {
	altScreen.Lock()
	defer altScreen.Unlock()
	if !altScreen.active {
		return nil
	}

	if err := winapi.RestoreScreenBuffer(); err != nil {
		return err
	}
	windows.CloseHandle(altScreen.handle)
	altScreen.handle, altScreen.active = 0, false
	return nil
}

func (enableWrap) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (enableWrap) ExecuteNative(_ io.Writer) error {
	return winapi.SetLineWrap(true)
}

func (disableWrap) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (disableWrap) ExecuteNative(_ io.Writer) error {
	return winapi.SetLineWrap(false)
}

func (beginSync) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (beginSync) ExecuteNative(_ io.Writer) error {
	// No console equivalent; rendering is unbuffered there anyway
	return nil
}

func (endSync) AnsiSupported() bool { return winapi.SupportsAnsi() }

func (endSync) ExecuteNative(_ io.Writer) error {
	return nil
}
