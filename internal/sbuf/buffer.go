package sbuf

import (
	"fmt"
	"sync"
	"time"

	"github.com/telemetryco/sensorbuf/internal/sbuf/metrics"
)

// Buffer is the multi-consumer shared buffer described by the package
// documentation. The zero value is not usable; construct with New.
type Buffer[T any] struct {
	mu sync.Mutex

	// cond[D] and cond[S] are each associated with mu. A Signal on cond[id]
	// wakes at most the one consumer thread blocked for that identity;
	// Close broadcasts on both so every blocked consumer re-checks.
	cond [2]*sync.Cond

	head *node[T]
	cur  [2]*node[T] // cur[D], cur[S]
	closed bool

	depth   int
	metrics metrics.Provider
	waitD   metrics.Histogram
	waitS   metrics.Histogram
}

// New allocates an empty, open Buffer with both cursors empty.
func New[T any](opts ...Option) *Buffer[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	b := &Buffer[T]{
		metrics: cfg.metrics,
	}
	b.cond[D] = sync.NewCond(&b.mu)
	b.cond[S] = sync.NewCond(&b.mu)
	b.waitD = cfg.metrics.Histogram("sbuf_wait_seconds_D", metrics.WithUnit("seconds"))
	b.waitS = cfg.metrics.Histogram("sbuf_wait_seconds_S", metrics.WithUnit("seconds"))
	return b
}

// Insert adds value at the head of the buffer. It returns ErrClosed without
// side effect if the buffer has already been closed. Otherwise it repoints
// any cursor that was empty to the new node and signals the corresponding
// consumer, and returns nil.
func (b *Buffer[T]) Insert(value T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	n := &node[T]{value: value}
	if b.head != nil {
		// The outgoing head is no longer the newest; point it at n so any
		// cursor currently sitting there advances to n next.
		b.head.prev = n
	}
	b.head = n
	b.depth++

	wasEmpty := [2]bool{b.cur[D] == nil, b.cur[S] == nil}
	if wasEmpty[D] {
		b.cur[D] = n
	}
	if wasEmpty[S] {
		b.cur[S] = n
	}

	b.metrics.UpDownCounter("sbuf_depth").Add(1)

	if wasEmpty[D] {
		b.cond[D].Signal()
	}
	if wasEmpty[S] {
		b.cond[S].Signal()
	}
	return nil
}

// Remove returns the value at who's cursor and marks it observed, blocking
// while who's cursor is empty and the buffer is still open. It returns
// ErrTerminated once who has drained every inserted value and the buffer
// has been closed — the consumer loop's signal to exit. It returns
// ErrInvalidIdentity for any identity outside {D, S}.
func (b *Buffer[T]) Remove(who Identity) (T, error) {
	var zero T
	if !who.valid() {
		return zero, ErrInvalidIdentity
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	start := time.Now()
	for b.cur[who] == nil {
		if b.closed {
			return zero, ErrTerminated
		}
		b.cond[who].Wait()
	}
	b.observeWait(who, time.Since(start))

	n := b.cur[who]
	value := n.value
	bothSeen := n.markSeen(who)
	b.cur[who] = n.prev

	if bothSeen {
		b.reclaim(n)
	}

	return value, nil
}

// reclaim unlinks n, the node whose last observation flag was just set. By
// the traversal invariant (both cursors only ever move tail-ward), n is
// always the oldest live node at this moment, so unlinking only ever needs
// to retarget head when n was it — no live node's prev can still point to n.
func (b *Buffer[T]) reclaim(n *node[T]) {
	if n == b.head {
		b.head = nil
	}
	b.depth--
	b.metrics.UpDownCounter("sbuf_depth").Add(-1)
}

func (b *Buffer[T]) observeWait(who Identity, d time.Duration) {
	if who == D {
		b.waitD.Record(d.Seconds())
	} else {
		b.waitS.Record(d.Seconds())
	}
}

// Depth reports the current number of live (not yet fully reclaimed) nodes.
// It exists for tests and monitoring; SBUF's contract never requires a
// caller to know the depth.
func (b *Buffer[T]) Depth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.depth
}

// Close marks the buffer closed. It is idempotent and never blocks: after
// the first call, every subsequent Insert returns ErrClosed, and every
// blocked or future Remove re-evaluates and eventually returns
// ErrTerminated once its identity's cursor is drained.
func (b *Buffer[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.cond[D].Broadcast()
	b.cond[S].Broadcast()
}

// Destroy releases the buffer. It must only be called after both consumers
// have returned from their final Remove call. Calling Destroy on a
// non-empty buffer is a programming error and panics, mirroring the
// source's assert(buffer->head == buffer->tail).
func (b *Buffer[T]) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.head != nil || b.cur[D] != nil || b.cur[S] != nil {
		panic(fmt.Sprintf("%s: Destroy called on non-empty buffer", Namespace))
	}
}
