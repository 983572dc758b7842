package termctl

// Dispatch step names recorded in Error.Op
const (
	OpWrite  = "write"
	OpFlush  = "flush"
	OpNative = "native"
)

// Error wraps a sink or console failure raised during dispatch. Op names
// the step that failed, so callers can tell a sink I/O error from a native
// console error without losing the underlying cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "termctl " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
