package web

import "go.uber.org/atomic"

// metrics counts completed rotations and snapshots (bumped from the
// AfterRotate and AfterSnapshot hooks) and rejected requests (bumped by the
// handlers) across every request goroutine. All three counters are
// lock-free so incrementing them never becomes a contention point of its own.
type metrics struct {
	rotations     atomic.Int64
	snapshots     atomic.Int64
	rejected      atomic.Int64
}

func newMetrics() *metrics {
	return &metrics{}
}

func (m *metrics) snapshot() map[string]int64 {
	return map[string]int64{
		"rotations": m.rotations.Load(),
		"snapshots": m.snapshots.Load(),
		"rejected":  m.rejected.Load(),
	}
}
