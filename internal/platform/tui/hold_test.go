package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestHoldWindow(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(core.ActionLeft, start)

	tests := []struct {
		at       time.Duration
		expected bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{99 * time.Millisecond, true},
		{100 * time.Millisecond, false},
		{time.Second, false},
	}
	for _, tc := range tests {
		if got := h.Held(core.ActionLeft, start.Add(tc.at)); got != tc.expected {
			t.Errorf("Held after %v = %v, expected %v", tc.at, got, tc.expected)
		}
	}
}

func TestHoldRepeatExtends(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(core.ActionRight, start)
	h.Press(core.ActionRight, start.Add(80*time.Millisecond))

	if !h.Held(core.ActionRight, start.Add(150*time.Millisecond)) {
		t.Error("a key repeat should extend the hold window")
	}
}

func TestHoldDirectionsExclusive(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(0)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now)

	if h.Held(core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("right should be held")
	}
}

func TestHoldIgnoresActions(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(0)

	h.Press(core.ActionJump, now)
	if h.Held(core.ActionJump, now) {
		t.Error("only directions can be held")
	}
}

func TestHoldApply(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)
	h.Press(core.ActionLeft, start)

	frame := core.NewInputFrame()
	h.Apply(&frame, start.Add(10*time.Millisecond))
	if !frame.IsHeld(core.ActionLeft) {
		t.Fatal("Apply should mark held directions on the frame")
	}

	expired := core.NewInputFrame()
	h.Apply(&expired, start.Add(200*time.Millisecond))
	if expired.IsHeld(core.ActionLeft) {
		t.Error("expired directions should not be applied")
	}
	if len(h.until) != 0 {
		t.Error("expired directions should be forgotten")
	}
}

func TestHoldRelease(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(time.Second)
	h.Press(core.ActionLeft, now)
	h.Release()

	if h.Held(core.ActionLeft, now) {
		t.Error("Release should drop every held direction")
	}
}
