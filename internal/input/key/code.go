package key

import (
	"fmt"
	"strings"
)

// Code identifies a physical key independent of keyboard layout.
// Names follow the US layout position of the key.
type Code uint16

const (
	// CodeUnidentified is a key the platform could not identify.
	// It is never tracked.
	CodeUnidentified Code = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	// Punctuation
	Minus
	Equal
	BracketLeft
	BracketRight
	Backslash
	Semicolon
	Quote
	Backquote
	Comma
	Period
	Slash

	// Editing and whitespace
	Escape
	Enter
	Tab
	Space
	Backspace
	Delete
	Insert

	// Navigation
	Home
	End
	PageUp
	PageDown
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight

	// Modifiers
	ShiftLeft
	ShiftRight
	ControlLeft
	ControlRight
	AltLeft
	AltRight
	SuperLeft
	SuperRight

	// Locks and system
	CapsLock
	NumLock
	ScrollLock
	PrintScreen
	Pause
	ContextMenu

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// Keypad
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadSubtract
	NumpadMultiply
	NumpadDivide
	NumpadDecimal
	NumpadEnter

	codeCount
)

// NumCodes is the size of the physical code space, including
// CodeUnidentified.
const NumCodes = int(codeCount)

var codeNames = [codeCount]string{
	CodeUnidentified: "Unidentified",
	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD",
	KeyE: "KeyE", KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH",
	KeyI: "KeyI", KeyJ: "KeyJ", KeyK: "KeyK", KeyL: "KeyL",
	KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO", KeyP: "KeyP",
	KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX",
	KeyY: "KeyY", KeyZ: "KeyZ",
	Digit0: "Digit0", Digit1: "Digit1", Digit2: "Digit2", Digit3: "Digit3",
	Digit4: "Digit4", Digit5: "Digit5", Digit6: "Digit6", Digit7: "Digit7",
	Digit8: "Digit8", Digit9: "Digit9",
	Minus:        "Minus",
	Equal:        "Equal",
	BracketLeft:  "BracketLeft",
	BracketRight: "BracketRight",
	Backslash:    "Backslash",
	Semicolon:    "Semicolon",
	Quote:        "Quote",
	Backquote:    "Backquote",
	Comma:        "Comma",
	Period:       "Period",
	Slash:        "Slash",
	Escape:       "Escape",
	Enter:        "Enter",
	Tab:          "Tab",
	Space:        "Space",
	Backspace:    "Backspace",
	Delete:       "Delete",
	Insert:       "Insert",
	Home:         "Home",
	End:          "End",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	ArrowUp:      "ArrowUp",
	ArrowDown:    "ArrowDown",
	ArrowLeft:    "ArrowLeft",
	ArrowRight:   "ArrowRight",
	ShiftLeft:    "ShiftLeft",
	ShiftRight:   "ShiftRight",
	ControlLeft:  "ControlLeft",
	ControlRight: "ControlRight",
	AltLeft:      "AltLeft",
	AltRight:     "AltRight",
	SuperLeft:    "SuperLeft",
	SuperRight:   "SuperRight",
	CapsLock:     "CapsLock",
	NumLock:      "NumLock",
	ScrollLock:   "ScrollLock",
	PrintScreen:  "PrintScreen",
	Pause:        "Pause",
	ContextMenu:  "ContextMenu",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2", Numpad3: "Numpad3",
	Numpad4: "Numpad4", Numpad5: "Numpad5", Numpad6: "Numpad6", Numpad7: "Numpad7",
	Numpad8: "Numpad8", Numpad9: "Numpad9",
	NumpadAdd:      "NumpadAdd",
	NumpadSubtract: "NumpadSubtract",
	NumpadMultiply: "NumpadMultiply",
	NumpadDivide:   "NumpadDivide",
	NumpadDecimal:  "NumpadDecimal",
	NumpadEnter:    "NumpadEnter",
}

// String returns the canonical name of the code.
func (c Code) String() string {
	if c < codeCount {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", c)
}

// Valid reports whether c is a known, trackable code.
func (c Code) Valid() bool {
	return c > CodeUnidentified && c < codeCount
}

// IsLetter returns true for KeyA through KeyZ.
func (c Code) IsLetter() bool {
	return c >= KeyA && c <= KeyZ
}

// IsDigit returns true for the digit row keys.
func (c Code) IsDigit() bool {
	return c >= Digit0 && c <= Digit9
}

// IsFunctionKey returns true for F1 through F12.
func (c Code) IsFunctionKey() bool {
	return c >= F1 && c <= F12
}

// IsModifier returns true for the shift, control, alt and super keys.
func (c Code) IsModifier() bool {
	return c >= ShiftLeft && c <= SuperRight
}

// Modifier returns the modifier a modifier key contributes, or ModNone.
func (c Code) Modifier() Modifier {
	switch c {
	case ShiftLeft, ShiftRight:
		return ModShift
	case ControlLeft, ControlRight:
		return ModCtrl
	case AltLeft, AltRight:
		return ModAlt
	case SuperLeft, SuperRight:
		return ModSuper
	default:
		return ModNone
	}
}

// codeAliases maps additional lowercase names to codes.
var codeAliases = map[string]Code{
	"esc":       Escape,
	"return":    Enter,
	"cr":        Enter,
	"bs":        Backspace,
	"del":       Delete,
	"ins":       Insert,
	"pgup":      PageUp,
	"pgdn":      PageDown,
	"up":        ArrowUp,
	"down":      ArrowDown,
	"left":      ArrowLeft,
	"right":     ArrowRight,
	"shift":     ShiftLeft,
	"ctrl":      ControlLeft,
	"control":   ControlLeft,
	"alt":       AltLeft,
	"super":     SuperLeft,
	"meta":      SuperLeft,
	"menu":      ContextMenu,
	"printscr":  PrintScreen,
	"kpenter":   NumpadEnter,
	"backtick":  Backquote,
	"grave":     Backquote,
	"semicolon": Semicolon,
}

var codeByName = func() map[string]Code {
	m := make(map[string]Code, int(codeCount)+len(codeAliases))
	for c := KeyA; c < codeCount; c++ {
		m[strings.ToLower(codeNames[c])] = c
	}
	for name, c := range codeAliases {
		m[name] = c
	}
	return m
}()

// CodeFromName returns the code for a name (case-insensitive).
// Single letters and digits resolve to their key, so "w" is KeyW.
// Returns CodeUnidentified if the name is not recognized.
func CodeFromName(name string) Code {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) == 1 {
		if c := CodeFromRune(r[0]); c != CodeUnidentified {
			return c
		}
	}
	if c, ok := codeByName[strings.ToLower(name)]; ok {
		return c
	}
	return CodeUnidentified
}

// usShifted maps shifted US-layout symbols to the key that produces them.
var usShifted = map[rune]Code{
	'!': Digit1, '@': Digit2, '#': Digit3, '$': Digit4, '%': Digit5,
	'^': Digit6, '&': Digit7, '*': Digit8, '(': Digit9, ')': Digit0,
	'_': Minus, '+': Equal, '{': BracketLeft, '}': BracketRight,
	'|': Backslash, ':': Semicolon, '"': Quote, '~': Backquote,
	'<': Comma, '>': Period, '?': Slash,
}

var usUnshifted = map[rune]Code{
	'-': Minus, '=': Equal, '[': BracketLeft, ']': BracketRight,
	'\\': Backslash, ';': Semicolon, '\'': Quote, '`': Backquote,
	',': Comma, '.': Period, '/': Slash, ' ': Space,
	'\t': Tab, '\r': Enter, '\n': Enter,
}

// CodeFromRune resolves the physical key that types r on a US layout.
// Sources that only see characters (terminals) use this as a best guess.
func CodeFromRune(r rune) Code {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Code(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Code(r-'A')
	case r >= '0' && r <= '9':
		return Digit0 + Code(r-'0')
	}
	if c, ok := usUnshifted[r]; ok {
		return c
	}
	if c, ok := usShifted[r]; ok {
		return c
	}
	return CodeUnidentified
}

// ShiftedRune reports whether typing r on a US layout needs Shift.
func ShiftedRune(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	_, ok := usShifted[r]
	return ok
}
