package style

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Attribute is a single text attribute, stored as one mask bit so whole
// sets pack into an Attributes value.
type Attribute uint32

// Text attributes in SGR order. The No* variants switch individual
// attributes back off; emulator support varies beyond the first ten.
const (
	Reset Attribute = 1 << iota
	Bold
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reverse
	Hidden
	CrossedOut
	Fraktur
	DoubleUnderlined
	NormalIntensity
	NoItalic
	NoUnderline
	NoBlink
	NoReverse
	NoHidden
	NotCrossedOut
	Framed
	Encircled
	OverLined
	NotFramedOrEncircled
	NotOverLined
)

// attrCodes couples each attribute bit position to its SGR parameter.
// Set operations, the iterator and the renderers all derive from this one
// table; keep it aligned with the constant block above.
var attrCodes = [...]uint8{
	0,  // Reset
	1,  // Bold
	2,  // Dim
	3,  // Italic
	4,  // Underlined
	5,  // SlowBlink
	6,  // RapidBlink
	7,  // Reverse
	8,  // Hidden
	9,  // CrossedOut
	20, // Fraktur
	21, // DoubleUnderlined
	22, // NormalIntensity
	23, // NoItalic
	24, // NoUnderline
	25, // NoBlink
	27, // NoReverse
	28, // NoHidden
	29, // NotCrossedOut
	51, // Framed
	52, // Encircled
	53, // OverLined
	54, // NotFramedOrEncircled
	55, // NotOverLined
}

// attrCount is the number of defined attributes; mask bits at or above it
// never name one.
const attrCount = len(attrCodes)

var attrNames = [attrCount]string{
	"Reset", "Bold", "Dim", "Italic", "Underlined", "SlowBlink",
	"RapidBlink", "Reverse", "Hidden", "CrossedOut", "Fraktur",
	"DoubleUnderlined", "NormalIntensity", "NoItalic", "NoUnderline",
	"NoBlink", "NoReverse", "NoHidden", "NotCrossedOut", "Framed",
	"Encircled", "OverLined", "NotFramedOrEncircled", "NotOverLined",
}

// valid reports whether a names exactly one defined attribute
func (a Attribute) valid() bool {
	return a != 0 && a&(a-1) == 0 && uint32(a) < 1<<attrCount
}

func mustValid(a Attribute) {
	if !a.valid() {
		panic(fmt.Sprintf("style: invalid attribute %#x", uint32(a)))
	}
}

// sgr returns the SGR parameter for a defined attribute
func (a Attribute) sgr() string {
	return strconv.Itoa(int(attrCodes[bits.TrailingZeros32(uint32(a))]))
}

// String returns the attribute name, e.g. "Bold".
func (a Attribute) String() string {
	if !a.valid() {
		return "Attribute(0x" + strconv.FormatUint(uint64(a), 16) + ")"
	}
	return attrNames[bits.TrailingZeros32(uint32(a))]
}
