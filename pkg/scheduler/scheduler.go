// Package scheduler coalesces tag invalidations into one flush per tick.
//
// Helpers may request recomputation many times within a single synchronous
// turn; the host flushes the queue once at the end of the turn, so N
// requests for the same tag collapse into exactly one dirty transition
// before the next read.
package scheduler

import (
	"sync"

	"github.com/go-vane/vane/pkg/tags"
)

// Queue collects tags that need dirtying and flushes them in one batch.
type Queue struct {
	pending    []*tags.Tag
	pendingSet map[*tags.Tag]bool
	mu         sync.Mutex

	// OnScheduled is called when a new tag is queued, signalling the host
	// that a flush should be scheduled. This is necessary for on-demand
	// ticking where the run loop is idle until work arrives.
	OnScheduled func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// ScheduleDirty enqueues t to be dirtied on the next Flush. Duplicate
// requests for a tag already queued are dropped. Safe to call from any
// goroutine.
func (q *Queue) ScheduleDirty(t *tags.Tag) {
	if t == nil {
		return
	}
	added := func() bool {
		q.mu.Lock()
		defer q.mu.Unlock()
		if q.pendingSet[t] {
			return false
		}
		if q.pendingSet == nil {
			q.pendingSet = make(map[*tags.Tag]bool)
		}
		q.pendingSet[t] = true
		q.pending = append(q.pending, t)
		return true
	}()

	if added && q.OnScheduled != nil {
		q.OnScheduled()
	}
}

// HasWork returns true if there are tags waiting to be dirtied.
func (q *Queue) HasWork() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) > 0
}

// Flush dirties every queued tag exactly once and empties the queue. The
// host calls this once per logical tick, before reading any tracked value.
func (q *Queue) Flush() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		pending := q.pending
		q.pending = nil
		clear(q.pendingSet)
		q.mu.Unlock()

		for _, t := range pending {
			tags.Dirty(t)
		}
	}
}

var (
	defaultQueue     *Queue
	defaultQueueOnce sync.Once
)

// Default returns the process-wide queue used by the built-in helper
// managers. Hosts embedding their own run loop should flush it once per
// turn.
func Default() *Queue {
	defaultQueueOnce.Do(func() {
		defaultQueue = NewQueue()
	})
	return defaultQueue
}
