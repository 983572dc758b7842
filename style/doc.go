// Package style provides colors, text attributes and the commands that
// apply them.
//
// Colors cover the terminal default, the 256-entry xterm palette and
// 24-bit RGB, with perceptual quantization down to 256 or 16 colors for
// less capable targets. Attributes pack into a bitmask set with the usual
// set algebra and an ordered iterator. ContentStyle bundles both and
// renders styled text as a single coalesced SGR sequence.
package style
