//go:build windows

package winapi

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

// Console attribute bits. The console packs color as BGR nibbles, the
// reverse of the ANSI RGB bit order.
const (
	FgBlue      uint16 = 0x0001
	FgGreen     uint16 = 0x0002
	FgRed       uint16 = 0x0004
	FgIntensity uint16 = 0x0008
	BgBlue      uint16 = 0x0010
	BgGreen     uint16 = 0x0020
	BgRed       uint16 = 0x0040
	BgIntensity uint16 = 0x0080
	FgMask      uint16 = 0x000f
	BgMask      uint16 = 0x00f0

	// COMMON_LVB flags, honored by the console for reverse and underscore
	ReverseVideo uint16 = 0x4000
	Underscore   uint16 = 0x8000
)

func conout() (windows.Handle, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return windows.InvalidHandle, fmt.Errorf("stdout handle: %w", err)
	}
	return h, nil
}

var supportsAnsi = sync.OnceValue(probeVT)

// SupportsAnsi reports whether the console accepts ANSI escape sequences.
// The first call tries to switch virtual terminal processing on; the
// answer is then fixed for the process lifetime.
func SupportsAnsi() bool {
	return supportsAnsi()
}

func probeVT() bool {
	h, err := conout()
	if err != nil {
		return false
	}

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}

// ScreenBufferInfo returns the current console screen buffer state.
func ScreenBufferInfo() (windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	h, err := conout()
	if err != nil {
		return info, err
	}
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return info, fmt.Errorf("GetConsoleScreenBufferInfo: %w", err)
	}
	return info, nil
}

// CursorPosition returns the cursor location in buffer coordinates.
func CursorPosition() (windows.Coord, error) {
	info, err := ScreenBufferInfo()
	if err != nil {
		return windows.Coord{}, err
	}
	return info.CursorPosition, nil
}

var originalAttrs = sync.OnceValue(func() uint16 {
	info, err := ScreenBufferInfo()
	if err != nil {
		return FgRed | FgGreen | FgBlue // white on black, the console default
	}
	return info.Attributes
})

// OriginalAttributes returns the console attributes latched before any
// styling command changed them. Color natives call it before their first
// modification so ResetColor can restore the pre-dispatch state.
func OriginalAttributes() uint16 {
	return originalAttrs()
}

// SetLineWrap toggles ENABLE_WRAP_AT_EOL_OUTPUT, the console's version of
// automatic wrapping at the right edge.
func SetLineWrap(on bool) error {
	h, err := conout()
	if err != nil {
		return err
	}

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return fmt.Errorf("GetConsoleMode: %w", err)
	}
	if on {
		mode |= windows.ENABLE_WRAP_AT_EOL_OUTPUT
	} else {
		mode &^= windows.ENABLE_WRAP_AT_EOL_OUTPUT
	}
	if err := windows.SetConsoleMode(h, mode); err != nil {
		return fmt.Errorf("SetConsoleMode: %w", err)
	}
	return nil
}
