package controller

import "context"

// broadcastGate is one group's group-wait[g] semaphore. All state access
// (ch field) is guarded by the controller's small-mutex, never by a lock of
// its own: a waiter snapshots the current generation's channel while
// holding small-mutex, then blocks on it after releasing every lock. Waking
// the gate closes that generation's channel, releasing every registered
// waiter at once so the whole cohort is admitted together, and installs a
// fresh channel for the next generation.
type broadcastGate struct {
	ch chan struct{}
}

func newBroadcastGate() *broadcastGate {
	return &broadcastGate{ch: make(chan struct{})}
}

// current must be called with the controller's small-mutex held.
func (g *broadcastGate) current() chan struct{} { return g.ch }

// wake must be called with the controller's small-mutex held.
func (g *broadcastGate) wake() {
	close(g.ch)
	g.ch = make(chan struct{})
}

// planeSem is a binary semaphore (permit count in {0,1}) guarding one
// plane. It is implemented as the idiomatic buffered-channel counting
// semaphore: capacity 1, pre-loaded with a single token.
type planeSem chan struct{}

func newPlaneSem() planeSem {
	s := make(planeSem, 1)
	s <- struct{}{}
	return s
}

// acquire blocks until the plane's token is available, or ctx is done.
func (s planeSem) acquire(ctx context.Context) error {
	select {
	case <-s:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release returns the plane's token. Must only be called by a holder.
func (s planeSem) release() {
	s <- struct{}{}
}
