// Package termctl dispatches terminal control commands to an output stream.
//
// Features:
//   - Queue batches command escape sequences into any io.Writer
//   - Execute flushes after the batch so effects are immediately visible
//   - Legacy Windows console fallback through the native console API
//   - Typed errors separating write, flush and native console failures
//
// Commands live in the subpackages cursor, screen, style and clipboard.
// Queue appends each command's escape sequence to the sink without
// flushing, which keeps multi-command updates in one burst when the sink
// is buffered. Execute performs the same dispatch and then flushes.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. On Windows 10+ virtual terminal processing is enabled on
// first use; older consoles are driven through the console API instead.
package termctl
