package main

import "testing"

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "GATE 12", "GATE 12"},
		{"first non blank line", "\r\n\n  hello\tworld \nsecond", "hello world"},
		{"control characters", "a\x07b\x7fc", "abc"},
		{"html", "<html><body><div>Gate&nbsp;12</div></body></html>", "Gate 12"},
		{"empty", " \n\t\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanClipboardText(tt.in); got != tt.want {
				t.Errorf("cleanClipboardText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
