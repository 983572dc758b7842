package termctl

import "io"

// Command is a single terminal instruction that knows its ANSI escape
// sequence form.
type Command interface {
	// Ansi returns the escape sequence realizing the command. It must be a
	// pure rendering: no I/O, no state changes, stable output.
	Ansi() string
}

// NativeCommand is implemented by commands that can reach the terminal
// through a platform console API when the target does not understand
// escape sequences (legacy Windows consoles). The dispatcher discovers it
// by type assertion, so plain Commands carry no extra methods.
type NativeCommand interface {
	Command

	// AnsiSupported reports whether the current target accepts the escape
	// sequence form. The answer is stable for the process lifetime.
	AnsiSupported() bool

	// ExecuteNative applies the command through the platform API, leaving
	// the terminal in the same state Ansi would have produced. Commands
	// whose native form is plain text may write to w directly.
	ExecuteNative(w io.Writer) error
}
