//go:build linux

package evdevsrc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/dshills/inputframe/internal/logging"
	"github.com/dshills/inputframe/internal/source"
)

// Source reads one or more evdev devices.
type Source struct {
	config Config
	log    *logging.Logger

	mu      sync.Mutex
	devices []*device
	started bool
	closed  bool
	queue   *source.Queue
	quit    chan struct{}
	wg      sync.WaitGroup
}

type device struct {
	path string
	dev  *evdev.InputDevice
	tr   *translator
}

// New creates an evdev source for the configured devices. Devices are
// opened by Start.
func New(config Config, log *logging.Logger) (*Source, error) {
	if log == nil {
		log = logging.Null()
	}
	return &Source{
		config: config,
		log:    log.WithComponent("evdevsrc"),
		quit:   make(chan struct{}),
	}, nil
}

// Name identifies the source.
func (s *Source) Name() string {
	return "evdev"
}

// Start opens every configured device and begins delivering events into q.
// If any device fails to open, devices already opened are closed again.
func (s *Source) Start(ctx context.Context, q *source.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return source.ErrClosed
	}
	if s.started {
		return errors.New("evdev source already started")
	}
	if len(s.config.Devices) == 0 {
		return ErrNoDevices
	}

	devices := make([]*device, 0, len(s.config.Devices))
	for _, path := range s.config.Devices {
		dev, err := evdev.Open(path)
		if err != nil {
			for _, d := range devices {
				_ = d.dev.Close()
			}
			return fmt.Errorf("open %s: %w", path, err)
		}
		if s.config.Grab {
			if err := dev.Grab(); err != nil {
				s.log.Warn("grab %s: %v", path, err)
			}
		}
		name, _ := dev.Name()
		s.log.Info("opened %s (%s)", path, name)
		devices = append(devices, &device{path: path, dev: dev, tr: newTranslator()})
	}

	s.devices = devices
	s.queue = q
	s.started = true

	for _, d := range devices {
		s.wg.Add(1)
		go s.read(ctx, d, q)
	}
	go s.closeOnDone(ctx)
	return nil
}

// closeOnDone closes the source when ctx is done. It returns as soon as
// the source is closed by other means.
func (s *Source) closeOnDone(ctx context.Context) {
	select {
	case <-ctx.Done():
		_ = s.Close()
	case <-s.quit:
	}
}

func (s *Source) read(ctx context.Context, d *device, q *source.Queue) {
	defer s.wg.Done()
	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if ctx.Err() == nil && !s.isClosed() {
				s.log.Warn("read %s: %v", d.path, err)
			}
			return
		}
		if out := d.tr.translate(ev); out != nil {
			q.Push(out)
		}
	}
}

func (s *Source) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close closes every device and releases keys and buttons still down.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.quit)
	devices := s.devices
	s.mu.Unlock()

	var errs []error
	for _, d := range devices {
		if s.config.Grab {
			_ = d.dev.Ungrab()
		}
		if err := d.dev.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", d.path, err))
		}
	}
	s.wg.Wait()

	for _, d := range devices {
		s.queue.PushAll(d.tr.releaseAll()...)
	}
	return errors.Join(errs...)
}
