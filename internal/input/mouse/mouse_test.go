package mouse

import "testing"

func TestButtonString(t *testing.T) {
	tests := []struct {
		button Button
		want   string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonMiddle, "middle"},
		{ButtonBack, "back"},
		{ButtonForward, "forward"},
		{Other(0), "other0"},
		{Other(7), "other7"},
	}

	for _, tt := range tests {
		if got := tt.button.String(); got != tt.want {
			t.Errorf("Button(%d).String() = %q, want %q", tt.button, got, tt.want)
		}
	}
}

func TestButtonFromName(t *testing.T) {
	tests := []struct {
		name string
		want Button
	}{
		{"left", ButtonLeft},
		{"LEFT", ButtonLeft},
		{" right ", ButtonRight},
		{"middle", ButtonMiddle},
		{"x1", ButtonBack},
		{"forward", ButtonForward},
		{"other2", Other(2)},
		{"otherx", ButtonNone},
		{"wheel", ButtonNone},
	}

	for _, tt := range tests {
		if got := ButtonFromName(tt.name); got != tt.want {
			t.Errorf("ButtonFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOther(t *testing.T) {
	b := Other(3)
	n, ok := b.IsOther()
	if !ok || n != 3 {
		t.Errorf("Other(3).IsOther() = %d, %v, want 3, true", n, ok)
	}
	if _, ok := ButtonLeft.IsOther(); ok {
		t.Error("ButtonLeft should not be an extended button")
	}
	if Other(255) != ButtonNone {
		t.Errorf("Other(255) = %v, want none", Other(255))
	}
	if ButtonNone.Valid() || !Other(1).Valid() {
		t.Error("Valid misclassified")
	}
}
