// Package edge tracks the press, hold and release lifecycle of one binary
// input element (a key or a mouse button) across update windows.
//
// A window is the interval between two CloseWindow calls. Any number of raw
// down and up notifications may arrive inside a window; CloseWindow
// collapses them into a single Classification. Multiple press/release pairs
// inside one window are reported as one press and one release: a per-frame
// polling model cannot observe more than that.
package edge

// Classification is the per-window view of one input element.
type Classification struct {
	// Pressed is true when the element went from up to down during the
	// window. Platform auto-repeat does not count.
	Pressed bool

	// PressedOSRepeating is true for a fresh press or for any platform
	// auto-repeat press during the window.
	PressedOSRepeating bool

	// Held is true when the element is down at the end of the window,
	// regardless of when the press began.
	Held bool

	// Released is true when the element was down at the end of the previous
	// window and is up now, or when it was pressed and released within this
	// window.
	Released bool
}

// Active reports whether any flag is set.
func (c Classification) Active() bool {
	return c.Pressed || c.PressedOSRepeating || c.Held || c.Released
}

// Tracker records raw notifications for one input element.
// The zero value is an element that has never been down.
type Tracker struct {
	wasDown bool
	down    bool

	// transient, cleared by CloseWindow
	sawFresh  bool
	sawRepeat bool
	sawTap    bool
}

// RecordDown marks the element down. A non-repeat down on an element that
// is not already down is a fresh press; a repeat down is remembered as
// platform auto-repeat. Further downs while down only accumulate.
func (t *Tracker) RecordDown(repeat bool) {
	if repeat {
		t.sawRepeat = true
	} else if !t.down {
		t.sawFresh = true
	}
	t.down = true
}

// RecordUp marks the element up immediately.
func (t *Tracker) RecordUp() {
	if t.down && (t.sawFresh || t.sawRepeat) {
		// pressed and released inside this window
		t.sawTap = true
	}
	t.down = false
}

// Down reports whether the element is currently down in the open window.
func (t *Tracker) Down() bool {
	return t.down
}

// CloseWindow classifies the window that just ended and opens the next one.
func (t *Tracker) CloseWindow() Classification {
	c := Classification{
		Pressed:            t.sawFresh,
		PressedOSRepeating: t.sawFresh || t.sawRepeat,
		Held:               t.down,
		Released:           (t.wasDown && !t.down) || t.sawTap,
	}

	t.wasDown = t.down
	t.sawFresh = false
	t.sawRepeat = false
	t.sawTap = false
	return c
}
