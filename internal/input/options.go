package input

import (
	"time"

	"github.com/dshills/inputframe/internal/logging"
)

// Option configures a Helper.
type Option func(*Helper)

// WithLogger sets the logger. Per-event traces are written at debug level.
func WithLogger(l *logging.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.log = l.WithComponent("input")
		}
	}
}

// WithClock sets the time source used for DeltaTime.
func WithClock(now func() time.Time) Option {
	return func(h *Helper) {
		if now != nil {
			h.now = now
		}
	}
}

// WithRearmLifecycle controls whether close and destroy notifications that
// arrive after one has already been reported are reported again. By default
// they are one-shot: the host is expected to exit after observing one.
func WithRearmLifecycle(rearm bool) Option {
	return func(h *Helper) {
		h.rearm = rearm
	}
}
