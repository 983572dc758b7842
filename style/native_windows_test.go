//go:build windows

package style

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/termctl"
)

// consoleSink is a buffered sink double for the console fallback path.
type consoleSink struct {
	bytes.Buffer
	flushed bool
}

func (s *consoleSink) Flush() error {
	s.flushed = true
	return nil
}

func TestPrintNativeFlushes(t *testing.T) {
	nc, ok := Print("hello").(termctl.NativeCommand)
	if !ok {
		t.Fatal("Expected Print to have a console fallback")
	}

	sink := &consoleSink{}
	if err := nc.ExecuteNative(sink); err != nil {
		t.Fatalf("ExecuteNative failed: %v", err)
	}

	if got := sink.String(); got != "hello" {
		t.Errorf("Expected %q, got %q", "hello", got)
	}
	// Attribute calls around the text apply immediately; buffered text
	// must not outlive them
	if !sink.flushed {
		t.Error("Expected the fallback to flush the sink")
	}
}

func TestPrintNativeBareWriter(t *testing.T) {
	nc := Print("plain").(termctl.NativeCommand)

	var buf bytes.Buffer
	if err := nc.ExecuteNative(&buf); err != nil {
		t.Fatalf("ExecuteNative failed: %v", err)
	}
	if got := buf.String(); got != "plain" {
		t.Errorf("Expected %q, got %q", "plain", got)
	}
}
