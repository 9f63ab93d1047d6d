// Package termsrc reads raw input from a terminal through tcell.
package termsrc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputframe/internal/input/event"
	"github.com/dshills/inputframe/internal/logging"
	"github.com/dshills/inputframe/internal/source"
)

// DefaultReleaseAfter covers the usual 500ms auto-repeat delay, so a held
// key is not released between its first press and its first repeat.
const DefaultReleaseAfter = 550 * time.Millisecond

// Config configures the terminal source.
type Config struct {
	// ReleaseAfter is how long a key must go unreported before its release
	// is synthesized.
	ReleaseAfter time.Duration

	// Mouse enables mouse reporting.
	Mouse bool

	// Focus enables focus reporting.
	Focus bool
}

// DefaultConfig returns the default terminal source configuration.
func DefaultConfig() Config {
	return Config{
		ReleaseAfter: DefaultReleaseAfter,
		Mouse:        true,
		Focus:        true,
	}
}

// Terminal is a source backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
	config Config
	log    *logging.Logger
	tr     *Translator

	mu      sync.Mutex
	queue   *source.Queue
	started bool
	closed  bool
	quit    chan struct{}
	wg      sync.WaitGroup
}

// New creates a terminal source on the process's terminal.
func New(config Config, log *logging.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, config, log), nil
}

// NewWithScreen creates a terminal source on an existing, uninitialized
// screen. Tests pass a tcell simulation screen.
func NewWithScreen(screen tcell.Screen, config Config, log *logging.Logger) *Terminal {
	if log == nil {
		log = logging.Null()
	}
	return &Terminal{
		screen: screen,
		config: config,
		log:    log.WithComponent("termsrc"),
		tr:     NewTranslator(config.ReleaseAfter),
		quit:   make(chan struct{}),
	}
}

// Name identifies the source.
func (t *Terminal) Name() string {
	return "terminal"
}

// Screen returns the underlying screen so hosts can draw on it.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Start initializes the screen and begins delivering events into q.
func (t *Terminal) Start(ctx context.Context, q *source.Queue) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return source.ErrClosed
	}
	if t.started {
		return errors.New("terminal source already started")
	}

	if err := t.screen.Init(); err != nil {
		return err
	}
	if t.config.Mouse {
		t.screen.EnableMouse()
	}
	if t.config.Focus {
		t.screen.EnableFocus()
	}

	t.queue = q
	t.started = true

	events := make(chan tcell.Event, 64)
	go t.screen.ChannelEvents(events, t.quit)

	t.wg.Add(1)
	go t.loop(ctx, events, q)

	t.log.Info("terminal source started (release after %s)", t.tr.releaseAfter)
	return nil
}

func (t *Terminal) loop(ctx context.Context, events <-chan tcell.Event, q *source.Queue) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.tr.releaseAfter / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.quit:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			q.PushAll(t.tr.Translate(ev, time.Now())...)
		case now := <-ticker.C:
			q.PushAll(t.tr.Expire(now)...)
		}
	}
}

// RequestClose asks the source to deliver a CloseRequested event. Safe to
// call from any goroutine, for example a signal handler.
func (t *Terminal) RequestClose() error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(closeRequest{}))
}

// Close stops delivery, releases every held key and button, reports the
// terminal as destroyed and restores the terminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	started := t.started
	t.mu.Unlock()

	close(t.quit)
	if !started {
		return nil
	}
	t.wg.Wait()

	t.queue.PushAll(t.tr.ReleaseAll()...)
	t.queue.Push(event.Destroyed{})
	t.screen.Fini()
	t.log.Info("terminal source closed")
	return nil
}
