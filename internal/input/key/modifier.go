package key

import "strings"

// Modifier represents a set of held modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates a Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates a Control key.
	ModCtrl

	// ModAlt indicates an Alt key (Option on macOS).
	ModAlt

	// ModSuper indicates a Super key (Cmd on macOS, Win on Windows).
	ModSuper
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}

// Codes returns the left and right physical keys that produce a single modifier.
func (m Modifier) Codes() []Code {
	switch m {
	case ModShift:
		return []Code{ShiftLeft, ShiftRight}
	case ModCtrl:
		return []Code{ControlLeft, ControlRight}
	case ModAlt:
		return []Code{AltLeft, AltRight}
	case ModSuper:
		return []Code{SuperLeft, SuperRight}
	default:
		return nil
	}
}
