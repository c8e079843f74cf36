package tui

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// DefaultHoldWindow covers the initial terminal key-repeat delay, after
// which repeats arrive every ~30 ms.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker emulates held directions. Terminals only report presses, so
// a direction counts as held until window passes without a repeat.
// Left and right are exclusive: pressing one releases the other.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a key event for a direction at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	default:
		return
	}
	h.until[a] = now.Add(h.window)
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Apply marks every direction held at now on the frame and forgets
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release forgets every held direction.
func (h *HoldTracker) Release() {
	clear(h.until)
}
