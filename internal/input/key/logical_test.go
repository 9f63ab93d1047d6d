package key

import (
	"errors"
	"testing"
)

func TestParseLogical(t *testing.T) {
	tests := []struct {
		spec string
		want Logical
	}{
		{"a", Character("a")},
		{"A", Character("A")},
		{"ж", Character("ж")},
		{"Enter", NamedLogical(NamedEnter)},
		{"enter", NamedLogical(NamedEnter)},
		{"esc", NamedLogical(NamedEscape)},
		{"ArrowUp", NamedLogical(NamedArrowUp)},
		{" ", NamedLogical(NamedSpace)},
		{"Space", NamedLogical(NamedSpace)},
		{"ab", Character("ab")},
	}

	for _, tt := range tests {
		got, err := ParseLogical(tt.spec)
		if err != nil {
			t.Errorf("ParseLogical(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLogical(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseLogicalEmpty(t *testing.T) {
	_, err := ParseLogical("")
	if !errors.Is(err, ErrEmptySpec) {
		t.Errorf("ParseLogical(\"\") error = %v, want ErrEmptySpec", err)
	}
}

func TestLogicalAccessors(t *testing.T) {
	var zero Logical
	if !zero.IsZero() {
		t.Error("zero Logical should report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("zero Logical String() = %q, want empty", zero.String())
	}

	c := Character("a")
	if s, ok := c.Char(); !ok || s != "a" {
		t.Errorf("Char() = %q, %v, want a, true", s, ok)
	}
	if _, ok := c.Name(); ok {
		t.Error("character logical should not have a name")
	}

	n := NamedLogical(NamedTab)
	if name, ok := n.Name(); !ok || name != NamedTab {
		t.Errorf("Name() = %v, %v, want Tab, true", name, ok)
	}
	if n.String() != "Tab" {
		t.Errorf("String() = %q, want Tab", n.String())
	}
}

func TestLogicalIsMapKey(t *testing.T) {
	m := map[Logical]int{}
	m[Character("a")]++
	m[Character("a")]++
	m[Character("A")]++
	if m[Character("a")] != 2 || m[Character("A")] != 1 {
		t.Errorf("unexpected counts %v", m)
	}
}

func TestLogicalForCode(t *testing.T) {
	tests := []struct {
		code Code
		want Logical
	}{
		{Enter, NamedLogical(NamedEnter)},
		{NumpadEnter, NamedLogical(NamedEnter)},
		{F3, NamedLogical(NamedF3)},
		{ShiftRight, NamedLogical(NamedShift)},
		{ArrowDown, NamedLogical(NamedArrowDown)},
		{KeyA, Logical{}},
	}

	for _, tt := range tests {
		if got := LogicalForCode(tt.code); got != tt.want {
			t.Errorf("LogicalForCode(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
