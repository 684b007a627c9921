package controller

import (
	"sync"

	"go.uber.org/atomic"
)

// fifoMutex is a strictly-FIFO binary mutex: acquisitions are served in the
// exact order tickets were drawn, so a flood of same-group newcomers can
// never repeatedly win the admission race against an older, different-group
// waiter. It is modeled on the ticket-lock in the retrieval pack's
// ordermutex package (precise per-ticket wakeup via a dedicated channel),
// simplified because the controller's big-mutex is always acquired
// uninterruptibly here - there is no cancellable Lock.
type fifoMutex struct {
	next atomic.Uint64

	mu      sync.Mutex
	cur     uint64
	waiters map[uint64]chan struct{}
}

func newFIFOMutex() *fifoMutex {
	return &fifoMutex{waiters: make(map[uint64]chan struct{})}
}

// Lock blocks until every ticket drawn before this one has unlocked.
func (m *fifoMutex) Lock() {
	id := m.next.Add(1) - 1

	m.mu.Lock()
	if id == m.cur {
		m.mu.Unlock()
		return
	}
	ch := make(chan struct{})
	m.waiters[id] = ch
	m.mu.Unlock()

	<-ch
}

// Unlock advances to the next ticket and wakes exactly the goroutine
// holding it, if any is waiting.
func (m *fifoMutex) Unlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur++
	if ch, ok := m.waiters[m.cur]; ok {
		delete(m.waiters, m.cur)
		close(ch)
	}
}
