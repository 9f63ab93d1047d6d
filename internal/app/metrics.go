package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame loop performance.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64
	idleFrames   atomic.Uint64

	// Raw events
	eventCount    atomic.Uint64
	eventsDropped atomic.Uint64

	// Script
	scriptCount   atomic.Uint64
	scriptTotalNs atomic.Int64
	scriptErrors  atomic.Uint64
	reloads       atomic.Uint64

	startTime atomic.Int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	m.startTime.Store(time.Now().UnixNano())
	return m
}

// RecordFrame records one step that took duration and consumed events raw
// events.
func (m *Metrics) RecordFrame(duration time.Duration, events int) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)
	m.eventCount.Add(uint64(events))
	if events == 0 {
		m.idleFrames.Add(1)
	}

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// SetDropped records the total number of raw events dropped by the queue.
func (m *Metrics) SetDropped(total int) {
	m.eventsDropped.Store(uint64(total))
}

// RecordScript records one script update.
func (m *Metrics) RecordScript(duration time.Duration, err error) {
	m.scriptCount.Add(1)
	m.scriptTotalNs.Add(duration.Nanoseconds())
	if err != nil {
		m.scriptErrors.Add(1)
	}
}

// RecordReload records a script reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	scriptCount := m.scriptCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	var avgScriptNs int64
	if scriptCount > 0 {
		avgScriptNs = m.scriptTotalNs.Load() / int64(scriptCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(time.Unix(0, m.startTime.Load())),
		FrameCount:     frameCount,
		IdleFrames:     m.idleFrames.Load(),
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		EventCount:     m.eventCount.Load(),
		EventsDropped:  m.eventsDropped.Load(),
		ScriptCount:    scriptCount,
		AvgScriptNs:    avgScriptNs,
		ScriptErrors:   m.scriptErrors.Load(),
		Reloads:        m.reloads.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.frameCount.Store(0)
	m.frameTotalNs.Store(0)
	m.frameMinNs.Store(1<<63 - 1)
	m.frameMaxNs.Store(0)
	m.lastFrameNs.Store(0)
	m.idleFrames.Store(0)
	m.eventCount.Store(0)
	m.eventsDropped.Store(0)
	m.scriptCount.Store(0)
	m.scriptTotalNs.Store(0)
	m.scriptErrors.Store(0)
	m.reloads.Store(0)
	m.startTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	IdleFrames     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	EventCount     uint64
	EventsDropped  uint64
	ScriptCount    uint64
	AvgScriptNs    int64
	ScriptErrors   uint64
	Reloads        uint64
}

// EventsPerFrame returns the average number of raw events per step.
func (s MetricsSnapshot) EventsPerFrame() float64 {
	if s.FrameCount == 0 {
		return 0
	}
	return float64(s.EventCount) / float64(s.FrameCount)
}

// IdleRate returns the percentage of steps that consumed no events.
func (s MetricsSnapshot) IdleRate() float64 {
	if s.FrameCount == 0 {
		return 0
	}
	return float64(s.IdleFrames) / float64(s.FrameCount) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
