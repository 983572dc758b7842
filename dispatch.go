package termctl

import "io"

// Flusher is the flushing side of a buffered sink. bufio.Writer satisfies
// it; Execute flushes through it after queueing. Sinks without a Flush
// method are treated as always current.
type Flusher interface {
	Flush() error
}

// Queue appends the escape sequences of commands to w in argument order.
// Nothing is flushed: with a buffered sink the bytes reach the terminal on
// the next flush or when the buffer fills, which keeps a burst of commands
// in one write. Dispatch stops at the first failure.
//
// On Windows, commands fall back to direct console API calls when the
// console cannot process escape sequences. Console calls cannot be
// queued; they take effect during dispatch, so on such consoles Queue
// and Execute behave the same apart from the trailing flush.
func Queue(w io.Writer, commands ...Command) error {
	for _, c := range commands {
		if err := writeCommand(w, c); err != nil {
			return err
		}
	}
	return nil
}

// Execute queues commands and then flushes w, making their effect visible
// immediately. The flush runs only when every command queued cleanly; a
// mid-batch failure leaves the sink unflushed.
//
// On a console without escape sequence support Execute collapses to
// Queue plus the trailing flush: each native call has already taken
// effect by the time it returns.
func Execute(w io.Writer, commands ...Command) error {
	if err := Queue(w, commands...); err != nil {
		return err
	}
	return flush(w)
}

// writeCommand dispatches one command, choosing between the escape
// sequence form and the platform native path.
func writeCommand(w io.Writer, c Command) error {
	if nc, ok := c.(NativeCommand); ok && !nc.AnsiSupported() {
		if err := nc.ExecuteNative(w); err != nil {
			return &Error{Op: OpNative, Err: err}
		}
		return nil
	}
	if _, err := io.WriteString(w, c.Ansi()); err != nil {
		return &Error{Op: OpWrite, Err: err}
	}
	return nil
}

func flush(w io.Writer) error {
	f, ok := w.(Flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return &Error{Op: OpFlush, Err: err}
	}
	return nil
}
