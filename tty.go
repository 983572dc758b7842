package termctl

import (
	"github.com/mattn/go-isatty"
)

// IsTTY reports whether f is attached to a terminal. Cygwin and msys2
// pseudo terminals count even though Windows reports them as pipes.
// Typical use: decide whether to emit styled output on os.Stdout.
func IsTTY(f interface{ Fd() uintptr }) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
