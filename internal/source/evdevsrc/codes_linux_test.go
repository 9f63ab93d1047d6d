//go:build linux

package evdevsrc

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/dshills/inputframe/internal/input/event"
	"github.com/dshills/inputframe/internal/input/key"
	"github.com/dshills/inputframe/internal/input/mouse"
	"github.com/dshills/inputframe/internal/source"
)

func keyEvent(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func relEvent(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_REL, Code: code, Value: value}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   *evdev.InputEvent
		want event.Event
	}{
		{"key down", keyEvent(evdev.KEY_W, 1), event.Key{Code: key.KeyW, Down: true}},
		{"key repeat", keyEvent(evdev.KEY_W, 2), event.Key{Code: key.KeyW, Down: true, Repeat: true}},
		{"key up", keyEvent(evdev.KEY_W, 0), event.Key{Code: key.KeyW}},
		{"modifier", keyEvent(evdev.KEY_LEFTSHIFT, 1), event.Key{Code: key.ShiftLeft, Down: true}},
		{"keypad", keyEvent(evdev.KEY_KPENTER, 1), event.Key{Code: key.NumpadEnter, Down: true}},
		{"left button", keyEvent(evdev.BTN_LEFT, 1), event.Button{Button: mouse.ButtonLeft, Down: true}},
		{"side button up", keyEvent(evdev.BTN_SIDE, 0), event.Button{Button: mouse.ButtonBack}},
		{"task button", keyEvent(evdev.BTN_TASK, 1), event.Button{Button: mouse.Other(0), Down: true}},
		{"button repeat", keyEvent(evdev.BTN_LEFT, 2), nil},
		{"unknown key", keyEvent(evdev.KEY_MUTE, 1), nil},
		{"rel x", relEvent(evdev.REL_X, -3), event.MotionDelta{DX: -3}},
		{"rel y", relEvent(evdev.REL_Y, 4), event.MotionDelta{DY: 4}},
		{"wheel", relEvent(evdev.REL_WHEEL, 1), event.ScrollDelta{DY: 1}},
		{"hwheel", relEvent(evdev.REL_HWHEEL, -1), event.ScrollDelta{DX: -1}},
		{"sync", &evdev.InputEvent{Type: evdev.EV_SYN}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTranslator().translate(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("translate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReleaseAll(t *testing.T) {
	tr := newTranslator()
	tr.translate(keyEvent(evdev.KEY_S, 1))
	tr.translate(keyEvent(evdev.KEY_A, 1))
	tr.translate(keyEvent(evdev.KEY_D, 1))
	tr.translate(keyEvent(evdev.KEY_D, 0))
	tr.translate(keyEvent(evdev.BTN_RIGHT, 1))

	got := tr.releaseAll()
	want := []event.Event{
		event.Key{Code: key.KeyA},
		event.Key{Code: key.KeyS},
		event.Button{Button: mouse.ButtonRight},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("releaseAll() = %v, want %v", got, want)
	}
	if again := tr.releaseAll(); len(again) != 0 {
		t.Errorf("second releaseAll() = %v, want none", again)
	}
}

func TestStartWithoutDevices(t *testing.T) {
	s, err := New(Config{}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Start(context.Background(), source.NewQueue(0)); !errors.Is(err, ErrNoDevices) {
		t.Errorf("Start() error = %v, want ErrNoDevices", err)
	}
}

func TestStartMissingDevice(t *testing.T) {
	s, _ := New(Config{Devices: []string{"/nonexistent/event99"}}, nil)
	if err := s.Start(context.Background(), source.NewQueue(0)); err == nil {
		t.Error("Start() with missing device succeeded")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := s.Start(context.Background(), source.NewQueue(0)); !errors.Is(err, source.ErrClosed) {
		t.Errorf("Start() after Close error = %v, want ErrClosed", err)
	}
}

func TestCloseOnDoneReturnsAfterClose(t *testing.T) {
	s, _ := New(Config{}, nil)

	done := make(chan struct{})
	go func() {
		s.closeOnDone(context.Background())
		close(done)
	}()

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("closeOnDone still running after Close")
	}
}

func TestCloseOnDoneClosesOnCancel(t *testing.T) {
	s, _ := New(Config{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.closeOnDone(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("closeOnDone ignored cancellation")
	}
	if !s.isClosed() {
		t.Error("source not closed after context cancel")
	}
}
