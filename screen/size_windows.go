//go:build windows

package screen

import (
	"fmt"

	"github.com/lixenwraith/termctl/winapi"
)

// Size returns the terminal dimensions in character cells, measured from
// the console window rectangle rather than the (often taller) buffer.
func Size() (cols, rows int, err error) {
	info, err := winapi.ScreenBufferInfo()
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	cols = int(info.Window.Right-info.Window.Left) + 1
	rows = int(info.Window.Bottom-info.Window.Top) + 1
	return cols, rows, nil
}
