// Package input collapses raw input notifications into per-frame snapshots.
//
// A Helper sits between an event source and application update logic.
// Sources feed it raw events (key down/up, button down/up, cursor moves,
// motion and scroll deltas, window lifecycle notifications) in any number
// and without batch boundaries. Once per update tick the host calls Step,
// which closes the current update window and returns a Snapshot answering
// frame-relative questions:
//
//   - was this key just pressed (ignoring or including OS auto-repeat)
//   - is this key or button held
//   - was it released
//   - how far did the cursor, the mouse or the scroll wheel move
//   - did the window ask to close, get destroyed or change focus
//
// # Step Protocol
//
// Between two Step calls the helper is open and accepts events. Step closes
// every edge tracker and continuous accumulator, assembles a new Snapshot,
// clears per-window state and reopens. A Step with no events in between is
// the common idle case and yields an all-false, zero-delta snapshot.
//
// # Ownership
//
// The Helper and its Snapshot are driven by one goroutine, the one running
// the host's update loop. Sources that deliver events from other goroutines
// must serialize them first (see the source package's Queue). A Snapshot is
// valid until the next Step; retaining it longer is a usage error that is
// not detected.
//
// # Usage
//
//	h := input.New(input.WithLogger(logger))
//
//	for {
//	    queue.Drain(h.Ingest)
//	    snap := h.Step()
//	    if snap.CloseRequested() || snap.Destroyed() {
//	        return
//	    }
//	    if snap.KeyPressed(key.KeyW) {
//	        jump()
//	    }
//	}
package input
