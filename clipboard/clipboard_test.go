package clipboard

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestCopy(t *testing.T) {
	got := Copy("hello").Ansi()

	if !strings.HasPrefix(got, "\x1b]52;c;") {
		t.Errorf("Expected an OSC 52 clipboard prefix, got %q", got)
	}

	payload := base64.StdEncoding.EncodeToString([]byte("hello"))
	if !strings.Contains(got, payload) {
		t.Errorf("Expected base64 payload %q in %q", payload, got)
	}
}

func TestCopyPrimary(t *testing.T) {
	got := CopyPrimary("hello").Ansi()

	if !strings.HasPrefix(got, "\x1b]52;p;") {
		t.Errorf("Expected the primary selection prefix, got %q", got)
	}
}
