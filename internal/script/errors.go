package script

import "errors"

var (
	// ErrClosed is returned when using a closed runner.
	ErrClosed = errors.New("script runner is closed")

	// ErrTimeout is returned when an update exceeds its time limit.
	ErrTimeout = errors.New("script update timed out")
)

// Error describes a failure loading or running a script.
type Error struct {
	Script string // script path or name
	Op     string // "load", "update"
	Err    error
}

func (e *Error) Error() string {
	return "script " + e.Script + ": " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
