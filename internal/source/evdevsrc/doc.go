// Package evdevsrc reads raw input from Linux evdev devices
// (/dev/input/event*).
//
// Unlike a terminal, evdev reports real key releases and marks
// auto-repeat explicitly (value 2), so no release synthesis is needed.
// Devices are layout-free: key events carry a physical code only and no
// logical value.
package evdevsrc

import "errors"

// ErrUnsupported is returned on platforms without evdev.
var ErrUnsupported = errors.New("evdev input is only supported on linux")

// ErrNoDevices is returned by Start when no device paths are configured.
var ErrNoDevices = errors.New("no evdev devices configured")

// Config configures the evdev source.
type Config struct {
	// Devices are the device node paths to read, e.g. /dev/input/event3.
	Devices []string

	// Grab takes exclusive access to each device so its events do not
	// also reach other clients.
	Grab bool
}
