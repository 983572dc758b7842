// Package winapi wraps the slice of the Windows console API that command
// natives need: screen buffer inspection, cursor and attribute control,
// fill and scroll operations, and the virtual terminal probe that decides
// whether escape sequences can be used at all.
//
// Everything functional is build-tagged for windows; on other platforms
// the package is empty. Calls that golang.org/x/sys/windows does not wrap
// go through lazily loaded kernel32 procedures.
package winapi
