// Package source connects raw event producers to the input helper.
//
// Producers usually deliver events on their own goroutine (a terminal poll
// loop, a device reader). They push into a Queue; the host's update loop
// drains the Queue into the helper right before each step, which keeps the
// helper single-threaded.
package source

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dshills/inputframe/internal/input/event"
)

// ErrClosed is returned when starting a source that has been closed.
var ErrClosed = errors.New("source closed")

// Source produces raw events into a queue.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Start begins delivering events into q. It returns once delivery is
	// running; delivery stops when ctx is cancelled or Close is called.
	Start(ctx context.Context, q *Queue) error

	// Close stops delivery and releases resources.
	Close() error
}

// Queue buffers events between one producer and the update loop.
// Push may be called from any goroutine.
type Queue struct {
	mu      sync.Mutex
	events  []event.Event
	spare   []event.Event
	dropped int
	limit   int
}

// NewQueue creates a queue holding about limit undrained events.
// Zero means unbounded.
func NewQueue(limit int) *Queue {
	return &Queue{limit: limit}
}

// Push appends an event. When the queue is full continuous motion is
// given up first: an incoming delta or cursor move is dropped, otherwise
// the oldest buffered one is evicted to make room. Key and button
// releases and lifecycle events are always kept, even past the limit, so
// no identity is left held. Everything else is dropped when no motion is
// left to evict. Dropped reports the count.
func (q *Queue) Push(ev event.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.limit <= 0 || len(q.events) < q.limit {
		q.events = append(q.events, ev)
		return
	}

	if continuous(ev) {
		q.dropped++
		return
	}
	if i := slices.IndexFunc(q.events, continuous); i >= 0 {
		q.events = slices.Delete(q.events, i, i+1)
		q.dropped++
		q.events = append(q.events, ev)
		return
	}
	if essential(ev) {
		q.events = append(q.events, ev)
		return
	}
	q.dropped++
}

// continuous reports whether losing ev only loses precision.
func continuous(ev event.Event) bool {
	switch ev.(type) {
	case event.MotionDelta, event.ScrollDelta, event.CursorMoved:
		return true
	}
	return false
}

// essential reports whether dropping ev would corrupt held state.
func essential(ev event.Event) bool {
	switch e := ev.(type) {
	case event.Key:
		return !e.Down
	case event.Button:
		return !e.Down
	case event.CloseRequested, event.Destroyed:
		return true
	}
	return false
}

// PushAll appends events in order.
func (q *Queue) PushAll(evs ...event.Event) {
	for _, ev := range evs {
		q.Push(ev)
	}
}

// Drain hands every buffered event to fn in delivery order and returns how
// many were handed over. fn runs without the queue lock held, so producers
// are never blocked by ingestion.
func (q *Queue) Drain(fn func(event.Event)) int {
	q.mu.Lock()
	batch := q.events
	q.events = q.spare[:0]
	q.mu.Unlock()

	for _, ev := range batch {
		fn(ev)
	}

	clear(batch)
	q.mu.Lock()
	q.spare = batch[:0]
	q.mu.Unlock()
	return len(batch)
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Dropped returns the number of events dropped because the queue was full.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
