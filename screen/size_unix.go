//go:build !windows

package screen

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Size returns the terminal dimensions in character cells. When stdout is
// redirected it falls back to the controlling terminal.
func Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err == nil {
		return cols, rows, nil
	}

	tty, openErr := os.Open("/dev/tty")
	if openErr != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	defer tty.Close()

	cols, rows, err = term.GetSize(int(tty.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return cols, rows, nil
}
