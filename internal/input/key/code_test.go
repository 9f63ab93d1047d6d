package key

import "testing"

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnidentified, "Unidentified"},
		{KeyA, "KeyA"},
		{KeyW, "KeyW"},
		{Digit0, "Digit0"},
		{Escape, "Escape"},
		{ShiftRight, "ShiftRight"},
		{F12, "F12"},
		{NumpadEnter, "NumpadEnter"},
		{Code(9999), "Code(9999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEveryCodeHasName(t *testing.T) {
	for c := CodeUnidentified; c < codeCount; c++ {
		if codeNames[c] == "" {
			t.Errorf("Code(%d) has no name", c)
		}
	}
}

func TestCodeFromName(t *testing.T) {
	tests := []struct {
		name string
		want Code
	}{
		{"KeyW", KeyW},
		{"keyw", KeyW},
		{"w", KeyW},
		{"W", KeyW},
		{"1", Digit1},
		{"Digit1", Digit1},
		{"Esc", Escape},
		{"escape", Escape},
		{"Return", Enter},
		{"up", ArrowUp},
		{"ArrowLeft", ArrowLeft},
		{"F5", F5},
		{"f", KeyF},
		{"ShiftLeft", ShiftLeft},
		{"ctrl", ControlLeft},
		{" Space ", Space},
		{"?", Slash},
		{"nonsense", CodeUnidentified},
		{"", CodeUnidentified},
	}

	for _, tt := range tests {
		if got := CodeFromName(tt.name); got != tt.want {
			t.Errorf("CodeFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCodeFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Code
	}{
		{'a', KeyA},
		{'Z', KeyZ},
		{'0', Digit0},
		{'!', Digit1},
		{'-', Minus},
		{'_', Minus},
		{' ', Space},
		{'\r', Enter},
		{'é', CodeUnidentified},
	}

	for _, tt := range tests {
		if got := CodeFromRune(tt.r); got != tt.want {
			t.Errorf("CodeFromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestShiftedRune(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{'A', true},
		{'1', false},
		{'!', true},
		{'/', false},
		{'?', true},
	}

	for _, tt := range tests {
		if got := ShiftedRune(tt.r); got != tt.want {
			t.Errorf("ShiftedRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCodeClasses(t *testing.T) {
	if !KeyQ.IsLetter() || Digit1.IsLetter() {
		t.Error("IsLetter misclassified")
	}
	if !Digit9.IsDigit() || Numpad9.IsDigit() {
		t.Error("IsDigit misclassified")
	}
	if !F1.IsFunctionKey() || Escape.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified")
	}
	if !SuperRight.IsModifier() || CapsLock.IsModifier() {
		t.Error("IsModifier misclassified")
	}
	if CodeUnidentified.Valid() || codeCount.Valid() || !KeyA.Valid() {
		t.Error("Valid misclassified")
	}
}

func TestCodeModifier(t *testing.T) {
	tests := []struct {
		code Code
		want Modifier
	}{
		{ShiftLeft, ModShift},
		{ShiftRight, ModShift},
		{ControlRight, ModCtrl},
		{AltLeft, ModAlt},
		{SuperLeft, ModSuper},
		{KeyA, ModNone},
	}

	for _, tt := range tests {
		if got := tt.code.Modifier(); got != tt.want {
			t.Errorf("%v.Modifier() = %v, want %v", tt.code, got, tt.want)
		}
	}
}
