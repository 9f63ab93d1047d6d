// Package table keeps one edge tracker per input identity: physical key
// code, logical key value and mouse button. Each identity space is looked up
// independently.
package table

import (
	"github.com/dshills/inputframe/internal/input/edge"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
)

// buttonSpace is the number of distinct mouse.Button values.
const buttonSpace = 256

// Table owns the edge trackers for every identity referenced so far.
// Trackers are created on first reference and never removed. Physical codes
// and buttons are finite, so they live in fixed arrays; logical values are
// open-ended and live in a map.
type Table struct {
	codes     [key.NumCodes]*edge.Tracker
	codeOrder []key.Code

	buttons     [buttonSpace]*edge.Tracker
	buttonOrder []mouse.Button

	logical map[key.Logical]*edge.Tracker
}

// New creates an empty table.
func New() *Table {
	return &Table{
		logical: make(map[key.Logical]*edge.Tracker),
	}
}

// Frame is the classification of every tracked identity for one window.
type Frame struct {
	Codes   map[key.Code]edge.Classification
	Logical map[key.Logical]edge.Classification
	Buttons map[mouse.Button]edge.Classification
}

// Code returns the classification of a physical key.
// Identities never observed classify as all false.
func (f Frame) Code(c key.Code) edge.Classification {
	return f.Codes[c]
}

// LogicalKey returns the classification of a logical key.
func (f Frame) LogicalKey(l key.Logical) edge.Classification {
	return f.Logical[l]
}

// Button returns the classification of a mouse button.
func (f Frame) Button(b mouse.Button) edge.Classification {
	return f.Buttons[b]
}

// IngestKey records a key notification against its physical code and, when
// present, its logical value. Unidentified codes and absent logical values
// are not tracked.
func (t *Table) IngestKey(code key.Code, logical key.Logical, down, repeat bool) {
	if code.Valid() {
		record(t.codeTracker(code), down, repeat)
	}
	if !logical.IsZero() {
		record(t.logicalTracker(logical), down, repeat)
	}
}

// IngestButton records a mouse button notification. Buttons cannot repeat.
func (t *Table) IngestButton(b mouse.Button, down bool) {
	if !b.Valid() {
		return
	}
	record(t.buttonTracker(b), down, false)
}

func record(tr *edge.Tracker, down, repeat bool) {
	if down {
		tr.RecordDown(repeat)
	} else {
		tr.RecordUp()
	}
}

// CodeDown reports whether a physical key is down in the open window.
func (t *Table) CodeDown(c key.Code) bool {
	if !c.Valid() || t.codes[c] == nil {
		return false
	}
	return t.codes[c].Down()
}

// Len returns the number of tracked identities across all three spaces.
func (t *Table) Len() int {
	return len(t.codeOrder) + len(t.buttonOrder) + len(t.logical)
}

// CloseWindow closes the window on every tracker and returns the result.
func (t *Table) CloseWindow() Frame {
	f := Frame{
		Codes:   make(map[key.Code]edge.Classification, len(t.codeOrder)),
		Logical: make(map[key.Logical]edge.Classification, len(t.logical)),
		Buttons: make(map[mouse.Button]edge.Classification, len(t.buttonOrder)),
	}
	for _, c := range t.codeOrder {
		f.Codes[c] = t.codes[c].CloseWindow()
	}
	for l, tr := range t.logical {
		f.Logical[l] = tr.CloseWindow()
	}
	for _, b := range t.buttonOrder {
		f.Buttons[b] = t.buttons[b].CloseWindow()
	}
	return f
}

func (t *Table) codeTracker(c key.Code) *edge.Tracker {
	tr := t.codes[c]
	if tr == nil {
		tr = &edge.Tracker{}
		t.codes[c] = tr
		t.codeOrder = append(t.codeOrder, c)
	}
	return tr
}

func (t *Table) logicalTracker(l key.Logical) *edge.Tracker {
	tr, ok := t.logical[l]
	if !ok {
		tr = &edge.Tracker{}
		t.logical[l] = tr
	}
	return tr
}

func (t *Table) buttonTracker(b mouse.Button) *edge.Tracker {
	tr := t.buttons[b]
	if tr == nil {
		tr = &edge.Tracker{}
		t.buttons[b] = tr
		t.buttonOrder = append(t.buttonOrder, b)
	}
	return tr
}
