// Package motion accumulates continuous input signals (cursor position,
// raw mouse motion, scroll) over an update window.
package motion

import "fmt"

// Channel identifies a continuous signal.
type Channel uint8

const (
	// Cursor is the pointer position, reported as absolute coordinates.
	Cursor Channel = iota
	// Motion is raw device motion, reported as deltas.
	Motion
	// Scroll is wheel or trackpad scroll, reported as deltas.
	Scroll

	numChannels
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Cursor:
		return "cursor"
	case Motion:
		return "motion"
	case Scroll:
		return "scroll"
	default:
		return fmt.Sprintf("Channel(%d)", c)
	}
}

// Vec is a 2D value.
type Vec struct {
	X, Y float64
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Value is the per-window result for one channel.
type Value struct {
	// Delta is the sum of all deltas in the window.
	Delta Vec
	// Absolute is the latest absolute value. Valid only when HasAbsolute.
	Absolute Vec
	// HasAbsolute is false until an absolute value has been reported.
	HasAbsolute bool
}

type channelState struct {
	delta       Vec
	absolute    Vec
	hasAbsolute bool
}

// Accumulator sums deltas per channel and keeps the latest absolute value.
type Accumulator struct {
	channels [numChannels]channelState
}

// Frame holds every channel's value for one window.
type Frame [numChannels]Value

// Get returns the value of a channel.
func (f Frame) Get(c Channel) Value {
	if c >= numChannels {
		return Value{}
	}
	return f[c]
}

// AddDelta adds (dx, dy) to the channel's running sum.
func (a *Accumulator) AddDelta(c Channel, dx, dy float64) {
	if c >= numChannels {
		return
	}
	ch := &a.channels[c]
	ch.delta = ch.delta.Add(Vec{X: dx, Y: dy})
}

// SetAbsolute overwrites the channel's latest absolute value. The movement
// from the previous absolute value is added to the running delta, so the
// window delta equals the net absolute change. The first absolute value
// ever reported contributes no delta.
func (a *Accumulator) SetAbsolute(c Channel, x, y float64) {
	if c >= numChannels {
		return
	}
	ch := &a.channels[c]
	next := Vec{X: x, Y: y}
	if ch.hasAbsolute {
		ch.delta = ch.delta.Add(next.Sub(ch.absolute))
	}
	ch.absolute = next
	ch.hasAbsolute = true
}

// Clear forgets the channel's absolute value, for example when the cursor
// leaves the window. The next SetAbsolute starts a new baseline.
func (a *Accumulator) Clear(c Channel) {
	if c >= numChannels {
		return
	}
	a.channels[c].absolute = Vec{}
	a.channels[c].hasAbsolute = false
}

// Delta returns the running sum of the open window.
func (a *Accumulator) Delta(c Channel) Vec {
	if c >= numChannels {
		return Vec{}
	}
	return a.channels[c].delta
}

// CloseWindow returns every channel's value and zeroes the deltas.
// Absolute values carry forward.
func (a *Accumulator) CloseWindow() Frame {
	var f Frame
	for i := range a.channels {
		ch := &a.channels[i]
		f[i] = Value{
			Delta:       ch.delta,
			Absolute:    ch.absolute,
			HasAbsolute: ch.hasAbsolute,
		}
		ch.delta = Vec{}
	}
	return f
}
