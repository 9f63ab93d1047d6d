package input

import (
	"time"

	"github.com/dshills/inputframe/internal/input/edge"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/motion"
	"github.com/dshills/inputframe/internal/input/mouse"
	"github.com/dshills/inputframe/internal/input/table"
)

// Snapshot is the read-only view of one closed update window.
// All methods are pure reads. Identities never observed answer false.
type Snapshot struct {
	frame     uint64
	keys      table.Frame
	motion    motion.Frame
	modifiers key.Modifier

	closeRequested bool
	destroyed      bool
	focusChanged   bool
	focused        bool

	text    string
	dropped []string

	resized       bool
	resolution    Size
	hasResolution bool
	scaleChanged  bool
	scaleFactor   float64

	deltaTime time.Duration
}

func newSnapshot() *Snapshot {
	return &Snapshot{focused: true, scaleFactor: 1}
}

// Frame returns the step number that produced the snapshot, starting at 1.
// The empty snapshot available before the first step is frame 0.
func (s *Snapshot) Frame() uint64 { return s.frame }

// Key returns the full classification of a physical key.
func (s *Snapshot) Key(c key.Code) edge.Classification { return s.keys.Code(c) }

// KeyPressed reports a fresh press of a physical key, ignoring OS repeat.
func (s *Snapshot) KeyPressed(c key.Code) bool { return s.keys.Code(c).Pressed }

// KeyPressedOS reports a fresh press or an OS auto-repeat of a physical key.
func (s *Snapshot) KeyPressedOS(c key.Code) bool { return s.keys.Code(c).PressedOSRepeating }

// KeyHeld reports whether a physical key is down.
func (s *Snapshot) KeyHeld(c key.Code) bool { return s.keys.Code(c).Held }

// KeyReleased reports whether a physical key was released.
func (s *Snapshot) KeyReleased(c key.Code) bool { return s.keys.Code(c).Released }

// Logical returns the full classification of a logical key.
func (s *Snapshot) Logical(l key.Logical) edge.Classification { return s.keys.LogicalKey(l) }

// LogicalPressed reports a fresh press of a logical key, ignoring OS repeat.
func (s *Snapshot) LogicalPressed(l key.Logical) bool { return s.keys.LogicalKey(l).Pressed }

// LogicalPressedOS reports a fresh press or an OS auto-repeat of a logical key.
func (s *Snapshot) LogicalPressedOS(l key.Logical) bool {
	return s.keys.LogicalKey(l).PressedOSRepeating
}

// LogicalHeld reports whether a logical key is down.
func (s *Snapshot) LogicalHeld(l key.Logical) bool { return s.keys.LogicalKey(l).Held }

// LogicalReleased reports whether a logical key was released.
func (s *Snapshot) LogicalReleased(l key.Logical) bool { return s.keys.LogicalKey(l).Released }

// Mouse returns the full classification of a mouse button.
func (s *Snapshot) Mouse(b mouse.Button) edge.Classification { return s.keys.Button(b) }

// MousePressed reports whether a mouse button was pressed.
func (s *Snapshot) MousePressed(b mouse.Button) bool { return s.keys.Button(b).Pressed }

// MouseHeld reports whether a mouse button is down.
func (s *Snapshot) MouseHeld(b mouse.Button) bool { return s.keys.Button(b).Held }

// MouseReleased reports whether a mouse button was released.
func (s *Snapshot) MouseReleased(b mouse.Button) bool { return s.keys.Button(b).Released }

// Modifiers returns the modifiers whose physical keys are held.
func (s *Snapshot) Modifiers() key.Modifier { return s.modifiers }

// HeldShift reports whether either Shift key is held.
func (s *Snapshot) HeldShift() bool { return s.modifiers.Has(key.ModShift) }

// HeldControl reports whether either Control key is held.
func (s *Snapshot) HeldControl() bool { return s.modifiers.Has(key.ModCtrl) }

// HeldAlt reports whether either Alt key is held.
func (s *Snapshot) HeldAlt() bool { return s.modifiers.Has(key.ModAlt) }

// HeldSuper reports whether either Super key is held.
func (s *Snapshot) HeldSuper() bool { return s.modifiers.Has(key.ModSuper) }

func (s *Snapshot) heldModifiers() key.Modifier {
	var mods key.Modifier
	for _, m := range []key.Modifier{key.ModShift, key.ModCtrl, key.ModAlt, key.ModSuper} {
		for _, c := range m.Codes() {
			if s.keys.Code(c).Held {
				mods = mods.With(m)
			}
		}
	}
	return mods
}

// Cursor returns the last known cursor position. ok is false before the
// first position report and after the cursor left the window.
func (s *Snapshot) Cursor() (x, y float64, ok bool) {
	v := s.motion.Get(motion.Cursor)
	return v.Absolute.X, v.Absolute.Y, v.HasAbsolute
}

// CursorDiff returns how far the cursor moved during the window.
func (s *Snapshot) CursorDiff() (dx, dy float64) {
	d := s.motion.Get(motion.Cursor).Delta
	return d.X, d.Y
}

// MouseDiff returns the raw mouse motion during the window, unaffected by
// cursor acceleration or window bounds.
func (s *Snapshot) MouseDiff() (dx, dy float64) {
	d := s.motion.Get(motion.Motion).Delta
	return d.X, d.Y
}

// ScrollDiff returns the scroll amount during the window.
func (s *Snapshot) ScrollDiff() (dx, dy float64) {
	d := s.motion.Get(motion.Scroll).Delta
	return d.X, d.Y
}

// CloseRequested reports the window asked to close. It is reported in one
// snapshot only.
func (s *Snapshot) CloseRequested() bool { return s.closeRequested }

// Destroyed reports the window was destroyed. It is reported in one
// snapshot only.
func (s *Snapshot) Destroyed() bool { return s.destroyed }

// FocusChanged reports the window gained or lost focus during the window.
func (s *Snapshot) FocusChanged() bool { return s.focusChanged }

// Focused reports whether the window has focus at the end of the window.
func (s *Snapshot) Focused() bool { return s.focused }

// Text returns the text typed during the window, in order.
func (s *Snapshot) Text() string { return s.text }

// DroppedFiles returns the paths dropped onto the window, in order.
func (s *Snapshot) DroppedFiles() []string { return s.dropped }

// WindowResized returns the new size when the window was resized during
// the window.
func (s *Snapshot) WindowResized() (Size, bool) {
	return s.resolution, s.resized
}

// Resolution returns the latest known window size.
func (s *Snapshot) Resolution() (Size, bool) {
	return s.resolution, s.hasResolution
}

// ScaleFactorChanged returns the new scale factor when it changed during
// the window.
func (s *Snapshot) ScaleFactorChanged() (float64, bool) {
	return s.scaleFactor, s.scaleChanged
}

// ScaleFactor returns the latest known scale factor, 1 until reported.
func (s *Snapshot) ScaleFactor() float64 { return s.scaleFactor }

// DeltaTime returns the wall time between the step that opened this
// window and the step that closed it.
func (s *Snapshot) DeltaTime() time.Duration { return s.deltaTime }
