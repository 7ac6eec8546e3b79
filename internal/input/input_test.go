package input

import (
	"testing"
	"time"
)

func TestApplyByteToState(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		b     byte
		check func(s keyState) time.Time
	}{
		{"space fires", ' ', func(s keyState) time.Time { return s.fire }},
		{"a moves left", 'a', func(s keyState) time.Time { return s.left }},
		{"h moves left", 'h', func(s keyState) time.Time { return s.left }},
		{"d moves right", 'd', func(s keyState) time.Time { return s.right }},
		{"p pauses", 'p', func(s keyState) time.Time { return s.pause }},
		{"q quits", 'q', func(s keyState) time.Time { return s.quit }},
		{"ctrl-c quits", '\x03', func(s keyState) time.Time { return s.quit }},
		{"enter", '\r', func(s keyState) time.Time { return s.enter }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s keyState
			applyByteToState(&s, tt.b, now)
			if !tt.check(s).Equal(now) {
				t.Errorf("byte %q did not set the expected key", tt.b)
			}
		})
	}
}

func TestUnknownByteIgnored(t *testing.T) {
	var s keyState
	applyByteToState(&s, 'z', time.Now())
	if s != (keyState{}) {
		t.Error("unknown byte changed key state")
	}
}
