package motion

import "testing"

func TestAccumulatorSumsDeltas(t *testing.T) {
	var a Accumulator
	a.AddDelta(Motion, 1, 0)
	a.AddDelta(Motion, 2, 0)
	a.AddDelta(Motion, -1, 0)

	f := a.CloseWindow()
	if got := f.Get(Motion).Delta; got != (Vec{X: 2}) {
		t.Errorf("Motion delta = %+v, want {2 0}", got)
	}

	f = a.CloseWindow()
	if got := f.Get(Motion).Delta; !got.IsZero() {
		t.Errorf("Motion delta after idle window = %+v, want zero", got)
	}
}

func TestAccumulatorAbsoluteSurvivesReset(t *testing.T) {
	var a Accumulator
	a.SetAbsolute(Cursor, 10, 20)
	a.AddDelta(Cursor, 5, 5)

	f := a.CloseWindow()
	v := f.Get(Cursor)
	if !v.HasAbsolute || v.Absolute != (Vec{X: 10, Y: 20}) {
		t.Errorf("Cursor absolute = %+v, want {10 20}", v)
	}
	if v.Delta != (Vec{X: 5, Y: 5}) {
		t.Errorf("Cursor delta = %+v, want {5 5}", v.Delta)
	}

	f = a.CloseWindow()
	v = f.Get(Cursor)
	if v.Absolute != (Vec{X: 10, Y: 20}) {
		t.Errorf("Cursor absolute after reset = %+v, want {10 20}", v.Absolute)
	}
	if !v.Delta.IsZero() {
		t.Errorf("Cursor delta after reset = %+v, want zero", v.Delta)
	}
}

func TestAccumulatorAbsoluteMovementBecomesDelta(t *testing.T) {
	var a Accumulator
	a.SetAbsolute(Cursor, 100, 100)
	f := a.CloseWindow()
	if d := f.Get(Cursor).Delta; !d.IsZero() {
		t.Errorf("first absolute produced delta %+v", d)
	}

	a.SetAbsolute(Cursor, 110, 100)
	a.SetAbsolute(Cursor, 115, 90)
	f = a.CloseWindow()
	if d := f.Get(Cursor).Delta; d != (Vec{X: 15, Y: -10}) {
		t.Errorf("Cursor delta = %+v, want {15 -10}", d)
	}
}

func TestAccumulatorClear(t *testing.T) {
	var a Accumulator
	a.SetAbsolute(Cursor, 3, 4)
	a.Clear(Cursor)

	f := a.CloseWindow()
	if f.Get(Cursor).HasAbsolute {
		t.Error("HasAbsolute = true after Clear")
	}

	a.SetAbsolute(Cursor, 50, 50)
	f = a.CloseWindow()
	if d := f.Get(Cursor).Delta; !d.IsZero() {
		t.Errorf("re-entry produced delta %+v", d)
	}
}

func TestAccumulatorChannelsIndependent(t *testing.T) {
	var a Accumulator
	a.AddDelta(Scroll, 0, 1)
	a.AddDelta(Motion, 3, 0)

	if d := a.Delta(Scroll); d != (Vec{Y: 1}) {
		t.Errorf("Delta(Scroll) = %+v", d)
	}
	f := a.CloseWindow()
	if f.Get(Scroll).Delta != (Vec{Y: 1}) || f.Get(Motion).Delta != (Vec{X: 3}) {
		t.Errorf("channels mixed: %+v", f)
	}
	if f.Get(Cursor).HasAbsolute {
		t.Error("cursor should have no absolute value")
	}
}

func TestAccumulatorUnknownChannel(t *testing.T) {
	var a Accumulator
	a.AddDelta(Channel(9), 1, 1)
	a.SetAbsolute(Channel(9), 1, 1)
	a.Clear(Channel(9))
	if d := a.Delta(Channel(9)); !d.IsZero() {
		t.Errorf("Delta(unknown) = %+v", d)
	}
	f := a.CloseWindow()
	if v := f.Get(Channel(9)); v != (Value{}) {
		t.Errorf("Get(unknown) = %+v", v)
	}
}

func TestChannelString(t *testing.T) {
	tests := []struct {
		c    Channel
		want string
	}{
		{Cursor, "cursor"},
		{Motion, "motion"},
		{Scroll, "scroll"},
		{Channel(7), "Channel(7)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Channel.String() = %q, want %q", got, tt.want)
		}
	}
}
