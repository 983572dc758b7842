//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Console calls x/sys/windows does not wrap, loaded lazily from kernel32
var (
	kernel32                        = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleCursorPosition    = kernel32.NewProc("SetConsoleCursorPosition")
	procSetConsoleTextAttribute     = kernel32.NewProc("SetConsoleTextAttribute")
	procGetConsoleCursorInfo        = kernel32.NewProc("GetConsoleCursorInfo")
	procSetConsoleCursorInfo        = kernel32.NewProc("SetConsoleCursorInfo")
	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute  = kernel32.NewProc("FillConsoleOutputAttribute")
	procScrollConsoleScreenBufferW  = kernel32.NewProc("ScrollConsoleScreenBufferW")
	procSetConsoleScreenBufferSize  = kernel32.NewProc("SetConsoleScreenBufferSize")
	procSetConsoleWindowInfo        = kernel32.NewProc("SetConsoleWindowInfo")
	procSetConsoleTitleW            = kernel32.NewProc("SetConsoleTitleW")
	procCreateConsoleScreenBuffer   = kernel32.NewProc("CreateConsoleScreenBuffer")
	procSetConsoleActiveScreenBuf   = kernel32.NewProc("SetConsoleActiveScreenBuffer")
)

// consoleCursorInfo mirrors CONSOLE_CURSOR_INFO
type consoleCursorInfo struct {
	size    uint32
	visible int32
}

// charInfo mirrors CHAR_INFO with a UTF-16 character
type charInfo struct {
	char uint16
	attr uint16
}

// coordArg packs a COORD for a by-value syscall argument: X in the low
// word, Y in the high word.
func coordArg(c windows.Coord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}

// SetCursorPosition moves the console cursor to a buffer coordinate.
func SetCursorPosition(x, y int16) error {
	h, err := conout()
	if err != nil {
		return err
	}
	r1, _, e1 := procSetConsoleCursorPosition.Call(uintptr(h), coordArg(windows.Coord{X: x, Y: y}))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleCursorPosition: %w", e1)
	}
	return nil
}

// SetTextAttributes replaces the attributes applied to subsequent writes.
func SetTextAttributes(attrs uint16) error {
	h, err := conout()
	if err != nil {
		return err
	}
	r1, _, e1 := procSetConsoleTextAttribute.Call(uintptr(h), uintptr(attrs))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleTextAttribute: %w", e1)
	}
	return nil
}

// SetCursorVisible toggles console cursor visibility, preserving its size.
func SetCursorVisible(visible bool) error {
	h, err := conout()
	if err != nil {
		return err
	}

	var info consoleCursorInfo
	r1, _, e1 := procGetConsoleCursorInfo.Call(uintptr(h), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return fmt.Errorf("GetConsoleCursorInfo: %w", e1)
	}

	if visible {
		info.visible = 1
	} else {
		info.visible = 0
	}
	r1, _, e1 = procSetConsoleCursorInfo.Call(uintptr(h), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleCursorInfo: %w", e1)
	}
	return nil
}

// FillOutput writes count blank cells in the current attributes starting
// at start, the console equivalent of an erase sequence.
func FillOutput(start windows.Coord, count uint32) error {
	h, err := conout()
	if err != nil {
		return err
	}
	info, err := ScreenBufferInfo()
	if err != nil {
		return err
	}

	var written uint32
	r1, _, e1 := procFillConsoleOutputCharacterW.Call(
		uintptr(h), uintptr(uint16(' ')), uintptr(count),
		coordArg(start), uintptr(unsafe.Pointer(&written)))
	if r1 == 0 {
		return fmt.Errorf("FillConsoleOutputCharacter: %w", e1)
	}
	r1, _, e1 = procFillConsoleOutputAttribute.Call(
		uintptr(h), uintptr(info.Attributes), uintptr(count),
		coordArg(start), uintptr(unsafe.Pointer(&written)))
	if r1 == 0 {
		return fmt.Errorf("FillConsoleOutputAttribute: %w", e1)
	}
	return nil
}

// ScrollBuffer moves the cells inside rect so the rectangle's top-left
// lands on dest, filling vacated cells with blanks in the current
// attributes.
func ScrollBuffer(rect windows.SmallRect, dest windows.Coord) error {
	h, err := conout()
	if err != nil {
		return err
	}
	info, err := ScreenBufferInfo()
	if err != nil {
		return err
	}

	fill := charInfo{char: uint16(' '), attr: info.Attributes}
	r1, _, e1 := procScrollConsoleScreenBufferW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&rect)),
		0, // no clip rectangle
		coordArg(dest),
		uintptr(unsafe.Pointer(&fill)))
	if r1 == 0 {
		return fmt.Errorf("ScrollConsoleScreenBuffer: %w", e1)
	}
	return nil
}

// SetBufferSize resizes the console screen buffer.
func SetBufferSize(x, y int16) error {
	h, err := conout()
	if err != nil {
		return err
	}
	r1, _, e1 := procSetConsoleScreenBufferSize.Call(uintptr(h), coordArg(windows.Coord{X: x, Y: y}))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleScreenBufferSize: %w", e1)
	}
	return nil
}

// SetWindowInfo resizes the console window to rect, in absolute buffer
// coordinates.
func SetWindowInfo(rect windows.SmallRect) error {
	h, err := conout()
	if err != nil {
		return err
	}
	r1, _, e1 := procSetConsoleWindowInfo.Call(uintptr(h), 1, uintptr(unsafe.Pointer(&rect)))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleWindowInfo: %w", e1)
	}
	return nil
}

// SetTitle sets the console window title.
func SetTitle(title string) error {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("console title: %w", err)
	}
	r1, _, e1 := procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(p)))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleTitle: %w", e1)
	}
	return nil
}

// CreateScreenBuffer makes a fresh text-mode screen buffer, the console
// stand-in for an alternate screen.
func CreateScreenBuffer() (windows.Handle, error) {
	const consoleTextmodeBuffer = 1
	r1, _, e1 := procCreateConsoleScreenBuffer.Call(
		uintptr(uint32(windows.GENERIC_READ|windows.GENERIC_WRITE)),
		uintptr(uint32(windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE)),
		0, // default security
		consoleTextmodeBuffer,
		0)
	h := windows.Handle(r1)
	if h == windows.InvalidHandle {
		return windows.InvalidHandle, fmt.Errorf("CreateConsoleScreenBuffer: %w", e1)
	}
	return h, nil
}

// SetActiveScreenBuffer switches the console display to the given buffer.
func SetActiveScreenBuffer(h windows.Handle) error {
	r1, _, e1 := procSetConsoleActiveScreenBuf.Call(uintptr(h))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleActiveScreenBuffer: %w", e1)
	}
	return nil
}

// RestoreScreenBuffer reactivates the process stdout buffer after an
// alternate buffer was active.
func RestoreScreenBuffer() error {
	h, err := conout()
	if err != nil {
		return err
	}
	return SetActiveScreenBuffer(h)
}
