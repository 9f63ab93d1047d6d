//go:build !linux

package evdevsrc

import (
	"context"

	"github.com/dshills/inputframe/internal/logging"
	"github.com/dshills/inputframe/internal/source"
)

// Source is unavailable on this platform.
type Source struct{}

// New always fails with ErrUnsupported.
func New(config Config, log *logging.Logger) (*Source, error) {
	return nil, ErrUnsupported
}

// Name identifies the source.
func (s *Source) Name() string { return "evdev" }

// Start always fails with ErrUnsupported.
func (s *Source) Start(ctx context.Context, q *source.Queue) error { return ErrUnsupported }

// Close does nothing.
func (s *Source) Close() error { return nil }
