package style

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/termctl"
)

func TestCommandSequences(t *testing.T) {
	tests := []struct {
		name string
		cmd  termctl.Command
		want string
	}{
		{"foreground dark", Foreground(DarkBlue), "\x1b[34m"},
		{"foreground bright", Foreground(Red), "\x1b[91m"},
		{"foreground extended", Foreground(Ansi(200)), "\x1b[38;5;200m"},
		{"foreground rgb", Foreground(RGB(1, 2, 3)), "\x1b[38;2;1;2;3m"},
		{"foreground default", Foreground(Default), "\x1b[39m"},
		{"background dark", Background(DarkGreen), "\x1b[42m"},
		{"background bright", Background(White), "\x1b[107m"},
		{"underline color", UnderlineColor(Ansi(9)), "\x1b[58;5;9m"},
		{"underline default", UnderlineColor(Default), "\x1b[59m"},
		{"set colors", SetColors(DarkRed, Black), "\x1b[31;40m"},
		{"set attribute", SetAttribute(Bold), "\x1b[1m"},
		{"set attribute high code", SetAttribute(NotOverLined), "\x1b[55m"},
		{"reset color", ResetColor, "\x1b[0m"},
		{"print", Print("hello ", 42), "hello 42"},
		{"printf", Printf("%d%%", 99), "99%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Ansi(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSetAttributesOrder(t *testing.T) {
	// Renders in ascending bit order regardless of construction order
	cmd := SetAttributes(NewAttributes(Italic, Bold))

	want := "\x1b[1m\x1b[3m"
	if got := cmd.Ansi(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSetAttributesEmpty(t *testing.T) {
	if got := SetAttributes(Attributes{}).Ansi(); got != "" {
		t.Errorf("Expected no output, got %q", got)
	}
}

func TestSetAttributeInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected SetAttribute to panic")
		}
	}()
	SetAttribute(Bold | Dim)
}

func TestCommandDispatch(t *testing.T) {
	// Style commands ride through the dispatcher like any other
	var buf bytes.Buffer
	err := termctl.Execute(&buf,
		Foreground(Green),
		Print("ok"),
		ResetColor,
	)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := "\x1b[92mok\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
