package table

import (
	"testing"

	"github.com/dshills/inputframe/internal/input/edge"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
)

func TestTableUnknownIdentities(t *testing.T) {
	tbl := New()
	for i := 0; i < 3; i++ {
		f := tbl.CloseWindow()
		if f.Code(key.KeyW).Active() {
			t.Error("unknown code reported active")
		}
		if f.LogicalKey(key.Character("w")).Active() {
			t.Error("unknown logical key reported active")
		}
		if f.Button(mouse.ButtonLeft).Active() {
			t.Error("unknown button reported active")
		}
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
}

func TestTableZeroFrame(t *testing.T) {
	var f Frame
	if f.Code(key.KeyA).Active() || f.Button(mouse.ButtonRight).Active() {
		t.Error("zero frame reported active classification")
	}
}

func TestTableIngestKeyTracksBothIdentities(t *testing.T) {
	tbl := New()
	tbl.IngestKey(key.KeyA, key.Character("a"), true, false)

	f := tbl.CloseWindow()
	want := edge.Classification{Pressed: true, PressedOSRepeating: true, Held: true}
	if got := f.Code(key.KeyA); got != want {
		t.Errorf("Code(KeyA) = %+v, want %+v", got, want)
	}
	if got := f.LogicalKey(key.Character("a")); got != want {
		t.Errorf("LogicalKey(a) = %+v, want %+v", got, want)
	}
	if f.LogicalKey(key.Character("A")).Active() {
		t.Error("LogicalKey(A) should be independent of LogicalKey(a)")
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestTableIndependentIdentitiesMayDisagree(t *testing.T) {
	tbl := New()
	// Platform reports the press as "a" and the release as "A".
	tbl.IngestKey(key.KeyA, key.Character("a"), true, false)
	tbl.CloseWindow()
	tbl.IngestKey(key.KeyA, key.Character("A"), false, false)

	f := tbl.CloseWindow()
	if !f.Code(key.KeyA).Released {
		t.Error("physical key should be released")
	}
	if !f.LogicalKey(key.Character("a")).Held {
		t.Error("logical 'a' stays held when its release was reported as 'A'")
	}
}

func TestTableSkipsUntrackableIdentities(t *testing.T) {
	tbl := New()
	tbl.IngestKey(key.CodeUnidentified, key.Logical{}, true, false)
	tbl.IngestButton(mouse.ButtonNone, true)
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
}

func TestTableLogicalOnly(t *testing.T) {
	tbl := New()
	tbl.IngestKey(key.CodeUnidentified, key.Character("ж"), true, false)
	f := tbl.CloseWindow()
	if !f.LogicalKey(key.Character("ж")).Pressed {
		t.Error("logical-only key not pressed")
	}
	if len(f.Codes) != 0 {
		t.Errorf("Codes = %v, want empty", f.Codes)
	}
}

func TestTableButtons(t *testing.T) {
	tbl := New()
	tbl.IngestButton(mouse.ButtonLeft, true)
	tbl.IngestButton(mouse.Other(2), true)
	tbl.IngestButton(mouse.Other(2), false)

	f := tbl.CloseWindow()
	if got := f.Button(mouse.ButtonLeft); !got.Pressed || !got.Held {
		t.Errorf("left = %+v, want pressed and held", got)
	}
	if got := f.Button(mouse.Other(2)); !got.Pressed || !got.Released || got.Held {
		t.Errorf("other2 = %+v, want pressed and released", got)
	}

	tbl.IngestButton(mouse.ButtonLeft, false)
	f = tbl.CloseWindow()
	if got := f.Button(mouse.ButtonLeft); !got.Released || got.Held {
		t.Errorf("left after release = %+v", got)
	}
}

func TestTableRepeatOnlyAffectsKeys(t *testing.T) {
	tbl := New()
	tbl.IngestKey(key.KeyS, key.Character("s"), true, false)
	tbl.CloseWindow()
	tbl.IngestKey(key.KeyS, key.Character("s"), true, true)

	f := tbl.CloseWindow()
	got := f.Code(key.KeyS)
	if got.Pressed || !got.PressedOSRepeating || !got.Held {
		t.Errorf("repeat = %+v, want os-repeat and held only", got)
	}
}

func TestTableCodeDown(t *testing.T) {
	tbl := New()
	if tbl.CodeDown(key.ShiftLeft) {
		t.Error("CodeDown on unknown code = true")
	}
	tbl.IngestKey(key.ShiftLeft, key.Logical{}, true, false)
	if !tbl.CodeDown(key.ShiftLeft) {
		t.Error("CodeDown after press = false")
	}
	tbl.IngestKey(key.ShiftLeft, key.Logical{}, false, false)
	if tbl.CodeDown(key.ShiftLeft) {
		t.Error("CodeDown after release = true")
	}
}

func TestTableFrameContainsEveryTrackedIdentity(t *testing.T) {
	tbl := New()
	tbl.IngestKey(key.KeyQ, key.Logical{}, true, false)
	tbl.IngestKey(key.KeyQ, key.Logical{}, false, false)
	tbl.CloseWindow()

	f := tbl.CloseWindow()
	if _, ok := f.Codes[key.KeyQ]; !ok {
		t.Error("idle tracked code missing from frame")
	}
}
