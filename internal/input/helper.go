package input

import (
	"strings"
	"time"

	"github.com/dshills/inputframe/internal/input/event"
	"github.com/dshills/inputframe/internal/input/motion"
	"github.com/dshills/inputframe/internal/input/table"
	"github.com/dshills/inputframe/internal/logging"
)

// Helper ingests raw events and produces one Snapshot per Step.
// It is not safe for concurrent use.
type Helper struct {
	log   *logging.Logger
	now   func() time.Time
	rearm bool

	table  *table.Table
	motion motion.Accumulator

	// one-shot lifecycle flags
	closeRequested  bool
	closeReported   bool
	destroyed       bool
	destroyReported bool

	// per-window state
	focusChanged bool
	resized      bool
	scaleChanged bool
	text         strings.Builder
	dropped      []string
	pending      int

	// carried state
	focused       bool
	resolution    Size
	hasResolution bool
	scaleFactor   float64

	frame    uint64
	lastStep time.Time
	snapshot *Snapshot
}

// Size is a window size in physical units.
type Size struct {
	Width, Height int
}

// New creates a Helper with an open first window.
func New(opts ...Option) *Helper {
	h := &Helper{
		log:         logging.Null(),
		now:         time.Now,
		table:       table.New(),
		focused:     true,
		scaleFactor: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.lastStep = h.now()
	h.snapshot = newSnapshot()
	return h
}

// Ingest applies one raw event to the open window.
func (h *Helper) Ingest(ev event.Event) {
	if h.log.Enabled(logging.LevelDebug) {
		h.log.Debug("ingest %s: %v", ev.Kind(), ev)
	}
	h.pending++

	switch e := ev.(type) {
	case event.Key:
		h.table.IngestKey(e.Code, e.Logical, e.Down, e.Repeat)
		if e.Down && e.Text != "" {
			h.text.WriteString(e.Text)
		}
	case event.Button:
		h.table.IngestButton(e.Button, e.Down)
	case event.CursorMoved:
		h.motion.SetAbsolute(motion.Cursor, e.X, e.Y)
	case event.CursorLeft:
		h.motion.Clear(motion.Cursor)
	case event.MotionDelta:
		h.motion.AddDelta(motion.Motion, e.DX, e.DY)
	case event.ScrollDelta:
		h.motion.AddDelta(motion.Scroll, e.DX, e.DY)
	case event.CloseRequested:
		if h.closeReported && !h.rearm {
			h.log.Debug("close request already reported, ignoring")
			return
		}
		h.closeRequested = true
	case event.Destroyed:
		if h.destroyReported && !h.rearm {
			h.log.Debug("destroy already reported, ignoring")
			return
		}
		h.destroyed = true
	case event.FocusChanged:
		h.focusChanged = true
		h.focused = e.Focused
	case event.Resized:
		h.resized = true
		h.resolution = Size{Width: e.Width, Height: e.Height}
		h.hasResolution = true
	case event.ScaleFactorChanged:
		h.scaleChanged = true
		h.scaleFactor = e.Factor
	case event.FileDropped:
		h.dropped = append(h.dropped, e.Path)
	case event.Text:
		h.text.WriteString(e.Text)
	default:
		h.log.Warn("unhandled event kind %q", ev.Kind())
	}
}

// IngestAll applies events in order.
func (h *Helper) IngestAll(evs []event.Event) {
	for _, ev := range evs {
		h.Ingest(ev)
	}
}

// Step closes the current window, publishes its Snapshot and opens the
// next window. The returned Snapshot is valid until the next Step.
func (h *Helper) Step() *Snapshot {
	now := h.now()
	h.frame++

	s := &Snapshot{
		frame:          h.frame,
		keys:           h.table.CloseWindow(),
		motion:         h.motion.CloseWindow(),
		closeRequested: h.closeRequested,
		destroyed:      h.destroyed,
		focusChanged:   h.focusChanged,
		focused:        h.focused,
		text:           h.text.String(),
		dropped:        h.dropped,
		resized:        h.resized,
		resolution:     h.resolution,
		hasResolution:  h.hasResolution,
		scaleChanged:   h.scaleChanged,
		scaleFactor:    h.scaleFactor,
		deltaTime:      now.Sub(h.lastStep),
	}
	s.modifiers = s.heldModifiers()

	if h.closeRequested {
		h.closeReported = true
		h.log.Info("close requested (frame %d)", h.frame)
	}
	if h.destroyed {
		h.destroyReported = true
		h.log.Info("window destroyed (frame %d)", h.frame)
	}
	if h.pending > 0 && h.log.Enabled(logging.LevelDebug) {
		h.log.Debug("frame %d: %d events, %d tracked identities", h.frame, h.pending, h.table.Len())
	}

	h.closeRequested = false
	h.destroyed = false
	h.focusChanged = false
	h.resized = false
	h.scaleChanged = false
	h.text.Reset()
	h.dropped = nil
	h.pending = 0
	h.lastStep = now
	h.snapshot = s
	return s
}

// Snapshot returns the most recent snapshot. Before the first Step it is
// an empty snapshot.
func (h *Helper) Snapshot() *Snapshot {
	return h.snapshot
}

// Frame returns the number of completed steps.
func (h *Helper) Frame() uint64 {
	return h.frame
}

// Pending returns the number of events ingested into the open window.
func (h *Helper) Pending() int {
	return h.pending
}
