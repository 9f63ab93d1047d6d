package termsrc

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputframe/internal/input/event"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
)

// closeRequest is the interrupt payload RequestClose posts.
type closeRequest struct{}

// heldID is the physical code of a held key, or its logical value when
// the code is unidentified.
type heldID struct {
	code    key.Code
	logical key.Logical
}

func idFor(code key.Code, logical key.Logical) heldID {
	if code.Valid() {
		return heldID{code: code}
	}
	return heldID{logical: logical}
}

type heldKey struct {
	logical  key.Logical
	lastSeen time.Time
}

// Translator converts tcell events into raw input events.
//
// Terminals report key presses only. The translator treats a key as held
// until it has not been reported for releaseAfter, then emits the release.
// A key reported again while held is an OS repeat. Held state is kept per
// physical key, so "a" followed by "A" is one held KeyA whose logical value
// changed. Modifier keys reported by the terminal are held the same way.
//
// A Translator is not safe for concurrent use.
type Translator struct {
	releaseAfter time.Duration

	held    map[heldID]heldKey
	buttons tcell.ButtonMask

	lastX, lastY int
	hasPos       bool
}

// NewTranslator creates a translator that synthesizes key releases after
// releaseAfter of silence.
func NewTranslator(releaseAfter time.Duration) *Translator {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &Translator{
		releaseAfter: releaseAfter,
		held:         make(map[heldID]heldKey),
	}
}

// Translate converts one tcell event observed at now.
func (t *Translator) Translate(ev tcell.Event, now time.Time) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(e, now)
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []event.Event{event.Resized{Width: w, Height: h}}
	case *tcell.EventFocus:
		return []event.Event{event.FocusChanged{Focused: e.Focused}}
	case *tcell.EventInterrupt:
		if _, ok := e.Data().(closeRequest); ok {
			return []event.Event{event.CloseRequested{}}
		}
	}
	return nil
}

func (t *Translator) translateKey(e *tcell.EventKey, now time.Time) []event.Event {
	code, logical, text, mods := resolveKey(e)
	if code == key.CodeUnidentified && logical.IsZero() {
		return nil
	}

	var out []event.Event
	for _, m := range []key.Modifier{key.ModShift, key.ModCtrl, key.ModAlt, key.ModSuper} {
		if mods.Has(m) {
			c := m.Codes()[0]
			out = append(out, t.press(c, key.LogicalForCode(c), "", now)...)
		}
	}
	return append(out, t.press(code, logical, text, now)...)
}

func (t *Translator) press(code key.Code, logical key.Logical, text string, now time.Time) []event.Event {
	id := idFor(code, logical)
	h, down := t.held[id]
	t.held[id] = heldKey{logical: logical, lastSeen: now}

	switch {
	case !down:
		return []event.Event{event.Key{Code: code, Logical: logical, Down: true, Text: text}}
	case h.logical == logical:
		return []event.Event{event.Key{Code: code, Logical: logical, Down: true, Repeat: true, Text: text}}
	}

	// The physical key stayed down but now resolves to another value: the
	// old value goes up, the code repeats and the new value is a fresh press.
	out := make([]event.Event, 0, 3)
	if !h.logical.IsZero() {
		out = append(out, event.Key{Logical: h.logical})
	}
	out = append(out, event.Key{Code: code, Down: true, Repeat: true})
	if !logical.IsZero() {
		out = append(out, event.Key{Logical: logical, Down: true, Text: text})
	}
	return out
}

// Expire releases every key not reported for releaseAfter. Releases are
// ordered by key code so output is deterministic.
func (t *Translator) Expire(now time.Time) []event.Event {
	var ids []heldID
	for id, h := range t.held {
		if now.Sub(h.lastSeen) >= t.releaseAfter {
			ids = append(ids, id)
		}
	}
	return t.release(ids)
}

// ReleaseAll releases every held key and mouse button.
func (t *Translator) ReleaseAll() []event.Event {
	ids := make([]heldID, 0, len(t.held))
	for id := range t.held {
		ids = append(ids, id)
	}
	out := t.release(ids)
	for _, bm := range buttonMap {
		if t.buttons&bm.mask != 0 {
			out = append(out, event.Button{Button: bm.button})
		}
	}
	t.buttons = 0
	return out
}

func (t *Translator) release(ids []heldID) []event.Event {
	slices.SortFunc(ids, func(a, b heldID) int {
		if a.code != b.code {
			return int(a.code) - int(b.code)
		}
		switch {
		case a.logical.String() < b.logical.String():
			return -1
		case a.logical.String() > b.logical.String():
			return 1
		}
		return 0
	})
	out := make([]event.Event, 0, len(ids))
	for _, id := range ids {
		out = append(out, event.Key{Code: id.code, Logical: t.held[id].logical})
		delete(t.held, id)
	}
	return out
}

// Held returns the number of keys the translator considers down.
func (t *Translator) Held() int {
	return len(t.held)
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.ButtonPrimary, mouse.ButtonLeft},
	{tcell.ButtonSecondary, mouse.ButtonRight},
	{tcell.ButtonMiddle, mouse.ButtonMiddle},
	{tcell.Button4, mouse.ButtonBack},
	{tcell.Button5, mouse.ButtonForward},
	{tcell.Button6, mouse.Other(0)},
	{tcell.Button7, mouse.Other(1)},
	{tcell.Button8, mouse.Other(2)},
}

func (t *Translator) translateMouse(e *tcell.EventMouse) []event.Event {
	var out []event.Event

	x, y := e.Position()
	if !t.hasPos || x != t.lastX || y != t.lastY {
		if t.hasPos {
			out = append(out, event.MotionDelta{DX: float64(x - t.lastX), DY: float64(y - t.lastY)})
		}
		out = append(out, event.CursorMoved{X: float64(x), Y: float64(y)})
		t.lastX, t.lastY, t.hasPos = x, y, true
	}

	mask := e.Buttons()
	for _, bm := range buttonMap {
		was := t.buttons&bm.mask != 0
		is := mask&bm.mask != 0
		if was != is {
			out = append(out, event.Button{Button: bm.button, Down: is})
		}
	}
	t.buttons = mask & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle |
		tcell.Button4 | tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8)

	var sx, sy float64
	if mask&tcell.WheelUp != 0 {
		sy++
	}
	if mask&tcell.WheelDown != 0 {
		sy--
	}
	if mask&tcell.WheelLeft != 0 {
		sx--
	}
	if mask&tcell.WheelRight != 0 {
		sx++
	}
	if sx != 0 || sy != 0 {
		out = append(out, event.ScrollDelta{DX: sx, DY: sy})
	}
	return out
}

// resolveKey maps a tcell key to a physical code, logical value, produced
// text and the modifiers that must be reported held.
func resolveKey(e *tcell.EventKey) (key.Code, key.Logical, string, key.Modifier) {
	mods := convertMod(e.Modifiers())

	k := e.Key()
	if k == tcell.KeyRune {
		r := e.Rune()
		if key.ShiftedRune(r) {
			mods = mods.With(key.ModShift)
		}
		logical := key.Character(string(r))
		if r == ' ' {
			logical = key.NamedLogical(key.NamedSpace)
		}
		text := string(r)
		if mods.Has(key.ModCtrl) || mods.Has(key.ModAlt) {
			text = ""
		}
		return key.CodeFromRune(r), logical, text, mods
	}

	if code, ok := namedKeys[k]; ok {
		text := ""
		switch code {
		case key.Enter:
			text = "\r"
		case key.Tab:
			text = "\t"
		}
		return code, key.LogicalForCode(code), text, mods
	}

	// Control chords arrive as their own key values.
	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		code := key.KeyA + key.Code(k-tcell.KeyCtrlA)
		letter := string(rune('a' + (k - tcell.KeyCtrlA)))
		return code, key.Character(letter), "", mods.With(key.ModCtrl)
	case k == tcell.KeyCtrlSpace:
		return key.Space, key.NamedLogical(key.NamedSpace), "", mods.With(key.ModCtrl)
	}
	return key.CodeUnidentified, key.Logical{}, "", mods
}

var namedKeys = map[tcell.Key]key.Code{
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBacktab:    key.Tab,
	tcell.KeyEscape:     key.Escape,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.ArrowUp,
	tcell.KeyDown:       key.ArrowDown,
	tcell.KeyLeft:       key.ArrowLeft,
	tcell.KeyRight:      key.ArrowRight,
	tcell.KeyPause:      key.Pause,
	tcell.KeyPrint:      key.PrintScreen,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

// convertMod converts a tcell modifier mask to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModSuper
	}
	return result
}
