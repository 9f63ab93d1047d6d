package key

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySpec is returned when parsing an empty key specification.
var ErrEmptySpec = errors.New("empty key specification")

// Named identifies a logical key that has no character representation.
type Named uint8

const (
	// NamedNone is not a key.
	NamedNone Named = iota
	NamedEnter
	NamedTab
	NamedSpace
	NamedBackspace
	NamedEscape
	NamedDelete
	NamedInsert
	NamedHome
	NamedEnd
	NamedPageUp
	NamedPageDown
	NamedArrowUp
	NamedArrowDown
	NamedArrowLeft
	NamedArrowRight
	NamedShift
	NamedControl
	NamedAlt
	NamedSuper
	NamedCapsLock
	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
	NamedF11
	NamedF12

	namedCount
)

var namedNames = [namedCount]string{
	NamedNone:       "None",
	NamedEnter:      "Enter",
	NamedTab:        "Tab",
	NamedSpace:      "Space",
	NamedBackspace:  "Backspace",
	NamedEscape:     "Escape",
	NamedDelete:     "Delete",
	NamedInsert:     "Insert",
	NamedHome:       "Home",
	NamedEnd:        "End",
	NamedPageUp:     "PageUp",
	NamedPageDown:   "PageDown",
	NamedArrowUp:    "ArrowUp",
	NamedArrowDown:  "ArrowDown",
	NamedArrowLeft:  "ArrowLeft",
	NamedArrowRight: "ArrowRight",
	NamedShift:      "Shift",
	NamedControl:    "Control",
	NamedAlt:        "Alt",
	NamedSuper:      "Super",
	NamedCapsLock:   "CapsLock",
	NamedF1:         "F1",
	NamedF2:         "F2",
	NamedF3:         "F3",
	NamedF4:         "F4",
	NamedF5:         "F5",
	NamedF6:         "F6",
	NamedF7:         "F7",
	NamedF8:         "F8",
	NamedF9:         "F9",
	NamedF10:        "F10",
	NamedF11:        "F11",
	NamedF12:        "F12",
}

// String returns the name of the key.
func (n Named) String() string {
	if n < namedCount {
		return namedNames[n]
	}
	return fmt.Sprintf("Named(%d)", n)
}

var namedByName = func() map[string]Named {
	m := make(map[string]Named, int(namedCount)+4)
	for n := NamedEnter; n < namedCount; n++ {
		m[strings.ToLower(namedNames[n])] = n
	}
	m["esc"] = NamedEscape
	m["return"] = NamedEnter
	m["ctrl"] = NamedControl
	m["meta"] = NamedSuper
	return m
}()

// Logical is the layout-dependent value of a key press: either a character
// or a named key. The zero value means the platform could not resolve one.
// Logical values are comparable and are used directly as map keys.
type Logical struct {
	char  string
	named Named
}

// Character returns the logical value for a character. Case matters:
// "a" and "A" are different logical keys.
func Character(s string) Logical {
	return Logical{char: s}
}

// NamedLogical returns the logical value for a named key.
func NamedLogical(n Named) Logical {
	return Logical{named: n}
}

// IsZero reports whether l is absent.
func (l Logical) IsZero() bool {
	return l.char == "" && l.named == NamedNone
}

// Char returns the character of a character key.
func (l Logical) Char() (string, bool) {
	return l.char, l.char != ""
}

// Name returns the named key of a named logical value.
func (l Logical) Name() (Named, bool) {
	return l.named, l.named != NamedNone
}

// String returns the character or the key name.
func (l Logical) String() string {
	if l.char != "" {
		return l.char
	}
	if l.named != NamedNone {
		return l.named.String()
	}
	return ""
}

// ParseLogical resolves a logical key specification. Multi-character
// specifications matching a key name (case-insensitive) become named keys;
// anything else is taken as a literal character value.
func ParseLogical(spec string) (Logical, error) {
	if spec == "" {
		return Logical{}, ErrEmptySpec
	}
	if len([]rune(spec)) > 1 {
		if n, ok := namedByName[strings.ToLower(spec)]; ok {
			return NamedLogical(n), nil
		}
	}
	if spec == " " {
		return NamedLogical(NamedSpace), nil
	}
	return Character(spec), nil
}

// LogicalForCode returns the logical value a named physical key produces.
// Character keys return the zero value, as their character depends on layout.
func LogicalForCode(c Code) Logical {
	if c.IsFunctionKey() {
		return NamedLogical(NamedF1 + Named(c-F1))
	}
	switch c {
	case Enter, NumpadEnter:
		return NamedLogical(NamedEnter)
	case Tab:
		return NamedLogical(NamedTab)
	case Space:
		return NamedLogical(NamedSpace)
	case Backspace:
		return NamedLogical(NamedBackspace)
	case Escape:
		return NamedLogical(NamedEscape)
	case Delete:
		return NamedLogical(NamedDelete)
	case Insert:
		return NamedLogical(NamedInsert)
	case Home:
		return NamedLogical(NamedHome)
	case End:
		return NamedLogical(NamedEnd)
	case PageUp:
		return NamedLogical(NamedPageUp)
	case PageDown:
		return NamedLogical(NamedPageDown)
	case ArrowUp:
		return NamedLogical(NamedArrowUp)
	case ArrowDown:
		return NamedLogical(NamedArrowDown)
	case ArrowLeft:
		return NamedLogical(NamedArrowLeft)
	case ArrowRight:
		return NamedLogical(NamedArrowRight)
	case ShiftLeft, ShiftRight:
		return NamedLogical(NamedShift)
	case ControlLeft, ControlRight:
		return NamedLogical(NamedControl)
	case AltLeft, AltRight:
		return NamedLogical(NamedAlt)
	case SuperLeft, SuperRight:
		return NamedLogical(NamedSuper)
	case CapsLock:
		return NamedLogical(NamedCapsLock)
	default:
		return Logical{}
	}
}
