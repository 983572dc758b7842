package style

import "testing"

func TestStyledContentAnsi(t *testing.T) {
	sc := ContentStyle{
		Fg:         Red,
		Bg:         Black,
		Attributes: NewAttributes(Bold, Underlined),
	}.Apply("danger")

	// One coalesced SGR: attributes in bit order, then fg, then bg
	want := "\x1b[1;4;91;40mdanger\x1b[0m"
	if got := sc.Ansi(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStyledContentZeroStyle(t *testing.T) {
	sc := ContentStyle{}.Apply("plain")
	if got := sc.Ansi(); got != "plain" {
		t.Errorf("Expected %q, got %q", "plain", got)
	}
}

func TestStyledContentUnderlineColor(t *testing.T) {
	sc := ContentStyle{
		Underline:  RGB(1, 2, 3),
		Attributes: NewAttributes(Underlined),
	}.Apply("u")

	want := "\x1b[4;58;2;1;2;3mu\x1b[0m"
	if got := sc.Ansi(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStyledContentString(t *testing.T) {
	sc := ContentStyle{Fg: Green}.Apply("ok")
	if sc.String() != sc.Ansi() {
		t.Error("Expected String to match Ansi")
	}
}
