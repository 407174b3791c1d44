package tui

import "time"

// Held-key timing defaults.
const (
	DefaultRepeatInterval = 10 * time.Millisecond
	DefaultReleaseWindow  = 150 * time.Millisecond
)

// Hold tracks a held direction key on a terminal, which reports presses
// but never releases. A press of a new direction starts a hold; native
// auto-repeat presses of the same direction only keep it alive. The hold
// lapses when no press arrives within the release window.
//
// Each hold has a generation so that repeat timers scheduled for an earlier
// hold can be recognised and dropped.
type Hold struct {
	dir    int
	last   time.Time
	gen    int
	window time.Duration
}

// NewHold creates an idle hold with the given release window.
func NewHold(window time.Duration) Hold {
	return Hold{window: window}
}

// Press registers a press of direction dir at now. It reports whether the
// press started a new hold; refreshes of the current hold return false.
func (h *Hold) Press(dir int, now time.Time) bool {
	if h.dir == dir && now.Sub(h.last) <= h.window {
		h.last = now
		return false
	}
	h.dir = dir
	h.last = now
	h.gen++
	return true
}

// Repeat reports the direction to move for a repeat timer of generation gen
// firing at now. A lapsed hold is released and reports false.
func (h *Hold) Repeat(gen int, now time.Time) (int, bool) {
	if gen != h.gen || h.dir == 0 {
		return 0, false
	}
	if now.Sub(h.last) > h.window {
		h.dir = 0
		return 0, false
	}
	return h.dir, true
}

// Release ends the current hold and invalidates its repeat timers.
func (h *Hold) Release() {
	h.dir = 0
	h.gen++
}

// Generation returns the id of the current hold.
func (h Hold) Generation() int {
	return h.gen
}
