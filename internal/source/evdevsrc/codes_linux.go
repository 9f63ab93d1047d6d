//go:build linux

package evdevsrc

import (
	"github.com/holoplot/go-evdev"

	"github.com/dshills/inputframe/internal/input/event"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
)

// Key event values reported by the kernel.
const (
	valueUp     = 0
	valueDown   = 1
	valueRepeat = 2
)

var keyCodes = map[evdev.EvCode]key.Code{
	evdev.KEY_A: key.KeyA, evdev.KEY_B: key.KeyB, evdev.KEY_C: key.KeyC,
	evdev.KEY_D: key.KeyD, evdev.KEY_E: key.KeyE, evdev.KEY_F: key.KeyF,
	evdev.KEY_G: key.KeyG, evdev.KEY_H: key.KeyH, evdev.KEY_I: key.KeyI,
	evdev.KEY_J: key.KeyJ, evdev.KEY_K: key.KeyK, evdev.KEY_L: key.KeyL,
	evdev.KEY_M: key.KeyM, evdev.KEY_N: key.KeyN, evdev.KEY_O: key.KeyO,
	evdev.KEY_P: key.KeyP, evdev.KEY_Q: key.KeyQ, evdev.KEY_R: key.KeyR,
	evdev.KEY_S: key.KeyS, evdev.KEY_T: key.KeyT, evdev.KEY_U: key.KeyU,
	evdev.KEY_V: key.KeyV, evdev.KEY_W: key.KeyW, evdev.KEY_X: key.KeyX,
	evdev.KEY_Y: key.KeyY, evdev.KEY_Z: key.KeyZ,

	evdev.KEY_0: key.Digit0, evdev.KEY_1: key.Digit1, evdev.KEY_2: key.Digit2,
	evdev.KEY_3: key.Digit3, evdev.KEY_4: key.Digit4, evdev.KEY_5: key.Digit5,
	evdev.KEY_6: key.Digit6, evdev.KEY_7: key.Digit7, evdev.KEY_8: key.Digit8,
	evdev.KEY_9: key.Digit9,

	evdev.KEY_MINUS:      key.Minus,
	evdev.KEY_EQUAL:      key.Equal,
	evdev.KEY_LEFTBRACE:  key.BracketLeft,
	evdev.KEY_RIGHTBRACE: key.BracketRight,
	evdev.KEY_BACKSLASH:  key.Backslash,
	evdev.KEY_SEMICOLON:  key.Semicolon,
	evdev.KEY_APOSTROPHE: key.Quote,
	evdev.KEY_GRAVE:      key.Backquote,
	evdev.KEY_COMMA:      key.Comma,
	evdev.KEY_DOT:        key.Period,
	evdev.KEY_SLASH:      key.Slash,

	evdev.KEY_ESC:       key.Escape,
	evdev.KEY_ENTER:     key.Enter,
	evdev.KEY_TAB:       key.Tab,
	evdev.KEY_SPACE:     key.Space,
	evdev.KEY_BACKSPACE: key.Backspace,
	evdev.KEY_DELETE:    key.Delete,
	evdev.KEY_INSERT:    key.Insert,

	evdev.KEY_HOME:     key.Home,
	evdev.KEY_END:      key.End,
	evdev.KEY_PAGEUP:   key.PageUp,
	evdev.KEY_PAGEDOWN: key.PageDown,
	evdev.KEY_UP:       key.ArrowUp,
	evdev.KEY_DOWN:     key.ArrowDown,
	evdev.KEY_LEFT:     key.ArrowLeft,
	evdev.KEY_RIGHT:    key.ArrowRight,

	evdev.KEY_LEFTSHIFT:  key.ShiftLeft,
	evdev.KEY_RIGHTSHIFT: key.ShiftRight,
	evdev.KEY_LEFTCTRL:   key.ControlLeft,
	evdev.KEY_RIGHTCTRL:  key.ControlRight,
	evdev.KEY_LEFTALT:    key.AltLeft,
	evdev.KEY_RIGHTALT:   key.AltRight,
	evdev.KEY_LEFTMETA:   key.SuperLeft,
	evdev.KEY_RIGHTMETA:  key.SuperRight,

	evdev.KEY_CAPSLOCK:   key.CapsLock,
	evdev.KEY_NUMLOCK:    key.NumLock,
	evdev.KEY_SCROLLLOCK: key.ScrollLock,
	evdev.KEY_SYSRQ:      key.PrintScreen,
	evdev.KEY_PAUSE:      key.Pause,
	evdev.KEY_COMPOSE:    key.ContextMenu,

	evdev.KEY_F1: key.F1, evdev.KEY_F2: key.F2, evdev.KEY_F3: key.F3,
	evdev.KEY_F4: key.F4, evdev.KEY_F5: key.F5, evdev.KEY_F6: key.F6,
	evdev.KEY_F7: key.F7, evdev.KEY_F8: key.F8, evdev.KEY_F9: key.F9,
	evdev.KEY_F10: key.F10, evdev.KEY_F11: key.F11, evdev.KEY_F12: key.F12,

	evdev.KEY_KP0: key.Numpad0, evdev.KEY_KP1: key.Numpad1, evdev.KEY_KP2: key.Numpad2,
	evdev.KEY_KP3: key.Numpad3, evdev.KEY_KP4: key.Numpad4, evdev.KEY_KP5: key.Numpad5,
	evdev.KEY_KP6: key.Numpad6, evdev.KEY_KP7: key.Numpad7, evdev.KEY_KP8: key.Numpad8,
	evdev.KEY_KP9: key.Numpad9,

	evdev.KEY_KPPLUS:     key.NumpadAdd,
	evdev.KEY_KPMINUS:    key.NumpadSubtract,
	evdev.KEY_KPASTERISK: key.NumpadMultiply,
	evdev.KEY_KPSLASH:    key.NumpadDivide,
	evdev.KEY_KPDOT:      key.NumpadDecimal,
	evdev.KEY_KPENTER:    key.NumpadEnter,
}

var buttonCodes = map[evdev.EvCode]mouse.Button{
	evdev.BTN_LEFT:    mouse.ButtonLeft,
	evdev.BTN_RIGHT:   mouse.ButtonRight,
	evdev.BTN_MIDDLE:  mouse.ButtonMiddle,
	evdev.BTN_SIDE:    mouse.ButtonBack,
	evdev.BTN_BACK:    mouse.ButtonBack,
	evdev.BTN_EXTRA:   mouse.ButtonForward,
	evdev.BTN_FORWARD: mouse.ButtonForward,
	evdev.BTN_TASK:    mouse.Other(0),
}

// translator converts kernel events for one device. It remembers which
// keys and buttons are down so they can be released when the device goes
// away.
type translator struct {
	keys    map[key.Code]bool
	buttons map[mouse.Button]bool
}

func newTranslator() *translator {
	return &translator{
		keys:    make(map[key.Code]bool),
		buttons: make(map[mouse.Button]bool),
	}
}

func (t *translator) translate(ev *evdev.InputEvent) event.Event {
	switch ev.Type {
	case evdev.EV_KEY:
		if b, ok := buttonCodes[ev.Code]; ok {
			if ev.Value == valueRepeat {
				return nil
			}
			down := ev.Value == valueDown
			if down {
				t.buttons[b] = true
			} else {
				delete(t.buttons, b)
			}
			return event.Button{Button: b, Down: down}
		}
		code, ok := keyCodes[ev.Code]
		if !ok {
			return nil
		}
		switch ev.Value {
		case valueUp:
			delete(t.keys, code)
			return event.Key{Code: code}
		case valueDown:
			t.keys[code] = true
			return event.Key{Code: code, Down: true}
		case valueRepeat:
			t.keys[code] = true
			return event.Key{Code: code, Down: true, Repeat: true}
		}
	case evdev.EV_REL:
		v := float64(ev.Value)
		switch ev.Code {
		case evdev.REL_X:
			return event.MotionDelta{DX: v}
		case evdev.REL_Y:
			return event.MotionDelta{DY: v}
		case evdev.REL_WHEEL:
			return event.ScrollDelta{DY: v}
		case evdev.REL_HWHEEL:
			return event.ScrollDelta{DX: v}
		}
	}
	return nil
}

// releaseAll reports every key and button still down, keys first, each
// group in ascending order.
func (t *translator) releaseAll() []event.Event {
	var out []event.Event
	for c := key.Code(0); int(c) < key.NumCodes; c++ {
		if t.keys[c] {
			out = append(out, event.Key{Code: c})
		}
	}
	for b := 0; b < 256; b++ {
		if t.buttons[mouse.Button(b)] {
			out = append(out, event.Button{Button: mouse.Button(b)})
		}
	}
	clear(t.keys)
	clear(t.buttons)
	return out
}
