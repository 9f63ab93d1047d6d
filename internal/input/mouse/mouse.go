// Package mouse defines mouse button identities for the input system.
package mouse

import (
	"fmt"
	"strconv"
	"strings"
)

// Button identifies a mouse button. The named buttons cover common mice;
// extended buttons are addressed with Other.
type Button uint8

const (
	// ButtonNone indicates no button. It is never tracked.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward

	buttonOtherBase
)

// Other returns the identity of an extended button. n counts extended
// buttons from zero; Other(0) is the first button after ButtonForward.
func Other(n uint8) Button {
	if int(n)+int(buttonOtherBase) > 255 {
		return ButtonNone
	}
	return buttonOtherBase + Button(n)
}

// IsOther reports whether b is an extended button and returns its index.
func (b Button) IsOther() (uint8, bool) {
	if b < buttonOtherBase {
		return 0, false
	}
	return uint8(b - buttonOtherBase), true
}

// Valid reports whether b is a trackable button.
func (b Button) Valid() bool {
	return b != ButtonNone
}

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	case ButtonNone:
		return "none"
	default:
		n, _ := b.IsOther()
		return fmt.Sprintf("other%d", n)
	}
}

// ButtonFromName parses a button name ("left", "right", "middle", "back",
// "forward", "other3"). Returns ButtonNone if the name is not recognized.
func ButtonFromName(name string) Button {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "left", "primary":
		return ButtonLeft
	case "right", "secondary":
		return ButtonRight
	case "middle":
		return ButtonMiddle
	case "back", "x1":
		return ButtonBack
	case "forward", "x2":
		return ButtonForward
	}
	if rest, ok := strings.CutPrefix(name, "other"); ok {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err == nil {
			return Other(uint8(n))
		}
	}
	return ButtonNone
}
