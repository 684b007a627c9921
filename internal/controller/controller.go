// Package controller implements the concurrency monitor that admits and
// serializes rotation and snapshot requests against a cube: conflict-group
// admission, per-plane mutual exclusion, fair bounded-bypass wake-up, and
// cancellation handling. It knows nothing about cube geometry - callers
// pass it a (direction, plane) pair and, once admitted, are free to mutate
// whatever cells that plane covers.
package controller

import (
	"context"
	"fmt"

	"github.com/ehrlich-b/cubesync/internal/geometry"
)

// Group identifies one of the four scheduling classes: one per rotation
// direction plus one for snapshots.
type Group int

const (
	GroupDirZero  Group = 0
	GroupDirOne   Group = 1
	GroupDirTwo   Group = 2
	GroupSnapshot Group = 3
	numGroups           = 4
)

func groupForDirection(d geometry.Direction) Group { return Group(d) }

// Controller is the admission/egress monitor guarding a cube's faces. The
// zero value is not usable; construct with New.
type Controller struct {
	size int

	big   *fifoMutex // the FIFO admission gate ("big-mutex")
	small chan struct{} // binary mutex ("small-mutex"), modeled as a 1-buffered channel

	working      int
	activeGroup  Group
	nextPriority Group
	waiting      [numGroups]int
	pending      int

	groupGate [numGroups]*broadcastGate
	planeGate [3][]planeSem // [direction][plane]
}

// New builds a controller for a cube of the given size. size must match
// the geometry.Cube this controller will guard, since plane gates are
// preallocated one per plane per direction.
func New(size int) *Controller {
	c := &Controller{
		size:  size,
		big:   newFIFOMutex(),
		small: make(chan struct{}, 1),
	}
	c.small <- struct{}{}
	for g := 0; g < numGroups; g++ {
		c.groupGate[g] = newBroadcastGate()
	}
	for d := 0; d < 3; d++ {
		planes := make([]planeSem, size)
		for p := range planes {
			planes[p] = newPlaneSem()
		}
		c.planeGate[d] = planes
	}
	return c
}

func (c *Controller) lockSmall()   { <-c.small }
func (c *Controller) unlockSmall() { c.small <- struct{}{} }

func (c *Controller) sumWaitingLocked() int {
	total := 0
	for _, w := range c.waiting {
		total += w
	}
	return total
}

// tryWakeNextGroupLocked scans the four groups in round-robin order starting
// from nextPriority and wakes the first one with waiters, so no single
// group can perpetually starve the others. Must be called with small-mutex
// held.
func (c *Controller) tryWakeNextGroupLocked() bool {
	for i := 0; i < numGroups; i++ {
		g := Group((int(c.nextPriority) + i) % numGroups)
		if c.waiting[g] > 0 {
			c.activeGroup = g
			c.pending = c.waiting[g]
			c.groupGate[g].wake()
			c.nextPriority = Group((int(g) + 1) % numGroups)
			return true
		}
	}
	return false
}

// enterGroup runs the admission protocol for group g: fast-path entry when
// the cube is idle or already owned by g, otherwise queueing behind the
// group's broadcast gate and handling cancellation at every suspension
// point.
func (c *Controller) enterGroup(ctx context.Context, g Group) error {
	c.big.Lock()
	c.lockSmall()

	if c.sumWaitingLocked() == 0 && (c.working == 0 || c.activeGroup == g) {
		c.working++
		c.activeGroup = g
		c.unlockSmall()
		c.big.Unlock()
		return nil
	}

	c.waiting[g]++
	myCh := c.groupGate[g].current()
	c.unlockSmall()
	c.big.Unlock()

	woken := false
	select {
	case <-myCh:
		woken = true
	case <-ctx.Done():
	}

	if woken {
		c.lockSmall()
		c.waiting[g]--
		c.pending--
		c.working++
		if c.pending == 0 {
			c.big.Unlock()
		}
		c.unlockSmall()
		return nil
	}

	// Cancelled while blocked on group-wait[g].
	c.lockSmall()
	c.waiting[g]--
	select {
	case <-myCh:
		// The gate had already been woken for us: we are part of a cohort
		// whose wake-pulse is in flight. Drain our permit without blocking
		// and give up our share of the inherited big-mutex, instead of
		// losing the pulse that was meant for the rest of the cohort.
		c.pending--
		if c.pending == 0 {
			if c.working > 0 {
				c.big.Unlock()
			} else if !c.tryWakeNextGroupLocked() {
				c.big.Unlock()
			}
		}
	default:
		// Never woken: nothing more to undo.
	}
	c.unlockSmall()
	return ctx.Err()
}

// exitGroup runs the departure protocol for group g: decrement the active
// count, try to wake the next eligible group, and forward (or release) the
// inherited big-mutex accordingly.
func (c *Controller) exitGroup(g Group) {
	c.big.Lock()
	c.lockSmall()
	c.working--
	woke := c.tryWakeNextGroupLocked()
	if c.working > 0 || !woke {
		c.big.Unlock()
	}
	c.unlockSmall()
}

func (c *Controller) planeGateFor(d geometry.Direction, plane int) planeSem {
	return c.planeGate[int(d)][plane]
}

// EnterRotate admits a rotation request in the given direction touching the
// given plane. On success the caller holds both the direction's group
// admission and an exclusive hold on the plane, and must eventually call
// ExitRotate exactly once. May return a cancellation error from ctx.
func (c *Controller) EnterRotate(ctx context.Context, d geometry.Direction, plane int) error {
	if plane < 0 || plane >= c.size {
		panic(fmt.Sprintf("controller: plane %d out of range for size %d", plane, c.size))
	}
	g := groupForDirection(d)
	if err := c.enterGroup(ctx, g); err != nil {
		return err
	}
	if err := c.planeGateFor(d, plane).acquire(ctx); err != nil {
		// Admitted but never touched the geometry: restore invariants
		// as if this request had never entered its group.
		c.exitGroup(g)
		return err
	}
	return nil
}

// ExitRotate releases the plane lock and runs the exit protocol. Infallible.
func (c *Controller) ExitRotate(d geometry.Direction, plane int) {
	// Released before the shared exit block so same-direction peers waiting
	// on their own planes can proceed as soon as their plane frees.
	c.planeGateFor(d, plane).release()
	c.exitGroup(groupForDirection(d))
}

// EnterSnapshot admits a snapshot request. May return a cancellation error.
func (c *Controller) EnterSnapshot(ctx context.Context) error {
	return c.enterGroup(ctx, GroupSnapshot)
}

// ExitSnapshot runs the exit protocol for the snapshot group. Infallible.
func (c *Controller) ExitSnapshot() {
	c.exitGroup(GroupSnapshot)
}
