// Package event defines the raw input notifications consumed by the input
// helper.
//
// Event is a closed sum type: every variant is declared in this package and
// the helper handles them with a single exhaustive type switch. Sources
// deliver events in order; nothing is reordered or coalesced.
package event

import (
	"fmt"

	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
)

// Event is one raw notification from an event source.
type Event interface {
	// Kind returns a short name for the variant.
	Kind() string

	event()
}

// Key is a key press or release.
type Key struct {
	// Code is the physical key. CodeUnidentified when unknown.
	Code key.Code
	// Logical is the layout-resolved value. Zero when unknown.
	Logical key.Logical
	// Down is true for a press, false for a release.
	Down bool
	// Repeat marks a platform auto-repeat press.
	Repeat bool
	// Text is the text the press produced, if any.
	Text string
}

// Button is a mouse button press or release.
type Button struct {
	Button mouse.Button
	Down   bool
}

// CursorMoved reports the absolute cursor position in window coordinates.
type CursorMoved struct {
	X, Y float64
}

// CursorLeft reports the cursor left the window.
type CursorLeft struct{}

// MotionDelta reports raw device motion.
type MotionDelta struct {
	DX, DY float64
}

// ScrollDelta reports scroll amounts. Positive DY scrolls up.
type ScrollDelta struct {
	DX, DY float64
}

// CloseRequested reports the user asked to close the window.
type CloseRequested struct{}

// Destroyed reports the window was destroyed.
type Destroyed struct{}

// FocusChanged reports the window gained or lost focus.
type FocusChanged struct {
	Focused bool
}

// Resized reports a new window size in physical units.
type Resized struct {
	Width, Height int
}

// ScaleFactorChanged reports a new display scale factor.
type ScaleFactorChanged struct {
	Factor float64
}

// FileDropped reports a file dropped onto the window.
type FileDropped struct {
	Path string
}

// Text reports committed text not tied to a key press (paste, IME).
type Text struct {
	Text string
}

func (Key) Kind() string                { return "key" }
func (Button) Kind() string             { return "button" }
func (CursorMoved) Kind() string        { return "cursor-moved" }
func (CursorLeft) Kind() string         { return "cursor-left" }
func (MotionDelta) Kind() string        { return "motion" }
func (ScrollDelta) Kind() string        { return "scroll" }
func (CloseRequested) Kind() string     { return "close-requested" }
func (Destroyed) Kind() string          { return "destroyed" }
func (FocusChanged) Kind() string       { return "focus" }
func (Resized) Kind() string            { return "resized" }
func (ScaleFactorChanged) Kind() string { return "scale-factor" }
func (FileDropped) Kind() string        { return "file-dropped" }
func (Text) Kind() string               { return "text" }

func (Key) event()                {}
func (Button) event()             {}
func (CursorMoved) event()        {}
func (CursorLeft) event()         {}
func (MotionDelta) event()        {}
func (ScrollDelta) event()        {}
func (CloseRequested) event()     {}
func (Destroyed) event()          {}
func (FocusChanged) event()       {}
func (Resized) event()            {}
func (ScaleFactorChanged) event() {}
func (FileDropped) event()        {}
func (Text) event()               {}

// String returns a compact description, used in debug logs.
func (e Key) String() string {
	state := "up"
	if e.Down {
		state = "down"
		if e.Repeat {
			state = "repeat"
		}
	}
	return fmt.Sprintf("key %s/%q %s", e.Code, e.Logical.String(), state)
}

// String returns a compact description, used in debug logs.
func (e Button) String() string {
	if e.Down {
		return fmt.Sprintf("button %s down", e.Button)
	}
	return fmt.Sprintf("button %s up", e.Button)
}

// Press returns a fresh key press with the logical value and text derived
// from the code where the code names a non-character key.
func Press(code key.Code) Key {
	return Key{Code: code, Logical: key.LogicalForCode(code), Down: true}
}

// Release returns the release matching Press(code).
func Release(code key.Code) Key {
	return Key{Code: code, Logical: key.LogicalForCode(code)}
}

// Char returns a fresh press of a character key on a US layout.
func Char(r rune) Key {
	s := string(r)
	return Key{Code: key.CodeFromRune(r), Logical: key.Character(s), Down: true, Text: s}
}
