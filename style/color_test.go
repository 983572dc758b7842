package style

import (
	"strings"
	"testing"
)

func TestColorZeroValue(t *testing.T) {
	var c Color
	if c != Default {
		t.Error("Expected the zero value to be Default")
	}
}

func TestColorForegroundParams(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"default", Default, "39"},
		{"dark palette", DarkRed, "31"},
		{"bright palette", Red, "91"},
		{"extended palette", Ansi(123), "38;5;123"},
		{"rgb", RGB(16, 32, 48), "38;2;16;32;48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(tt.color.fg(nil), ";"); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestColorBackgroundParams(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"default", Default, "49"},
		{"dark palette", DarkBlue, "44"},
		{"bright palette", White, "107"},
		{"extended palette", Ansi(233), "48;5;233"},
		{"rgb", RGB(255, 0, 128), "48;2;255;0;128"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(tt.color.bg(nil), ";"); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestColorUnderlineParams(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"default", Default, "59"},
		{"palette", Ansi(9), "58;5;9"},
		{"rgb", RGB(1, 2, 3), "58;2;1;2;3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(tt.color.underline(nil), ";"); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHex(t *testing.T) {
	c, err := Hex("#8a2be2")
	if err != nil {
		t.Fatalf("Hex failed: %v", err)
	}
	if want := RGB(0x8a, 0x2b, 0xe2); c != want {
		t.Errorf("Expected %v, got %v", want, c)
	}
}

func TestHexInvalid(t *testing.T) {
	for _, s := range []string{"", "red", "#12345", "8a2be2"} {
		if _, err := Hex(s); err == nil {
			t.Errorf("Expected %q to fail to parse", s)
		}
	}
}

func TestTo256(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  Color
	}{
		{"default passes through", Default, Default},
		{"palette passes through", Ansi(42), Ansi(42)},
		{"cube point", RGB(95, 135, 175), Ansi(67)},
		{"black maps into the cube", RGB(0, 0, 0), Ansi(16)},
		{"white maps into the cube", RGB(255, 255, 255), Ansi(231)},
		{"mid gray hits the ramp", RGB(128, 128, 128), Ansi(244)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.To256(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTo16(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  Color
	}{
		{"default passes through", Default, Default},
		{"base palette passes through", Red, Red},
		{"pure red", RGB(255, 0, 0), Red},
		{"maroon", RGB(128, 0, 0), DarkRed},
		{"pure black", RGB(0, 0, 0), Black},
		{"pure white", RGB(255, 255, 255), White},
		{"extended red collapses", Ansi(196), Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.To16(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
