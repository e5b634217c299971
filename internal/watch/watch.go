// Package watch provides a single-slot value cell shared by exactly one
// Sender and any number of Receiver clones. The Sender publishes new values,
// Receivers read the latest value or suspend until it satisfies a predicate,
// and each side can tell, without blocking, whether the other side is gone.
package watch

import (
	"context"
	"errors"
	"sync"
)

// ErrSenderClosed is reported by a Receiver wait when the Sender was closed
// while the awaited condition was still unmet.
var ErrSenderClosed = errors.New("sender side was closed")

// cell is the storage shared by one Sender and all Receiver clones.
// Every field is guarded by mu; closing broadcast under mu is what makes
// "publish new value" and "wake waiters" atomic with respect to each other.
type cell[T comparable] struct {
	mu        sync.Mutex
	value     T
	version   uint64        // bumped on every actual transition, never on no-op sets
	broadcast chan struct{} // closed and replaced on every transition; closed for good once the sender is

	senderClosed  bool
	receivers     int // live Receiver clones
	receiversGone bool
}

// New creates a cell holding initial and returns the sole Sender and the
// first Receiver bound to it.
func New[T comparable](initial T) (*Sender[T], *Receiver[T]) {
	c := &cell[T]{
		value:     initial,
		broadcast: make(chan struct{}),
		receivers: 1,
	}
	return &Sender[T]{cell: c}, &Receiver[T]{cell: c}
}

// Sender is the unique writer handle of a cell. It is not cloneable: only
// New produces one, so single-writer is guaranteed by construction.
type Sender[T comparable] struct {
	cell *cell[T]
}

// Set publishes v and reports whether the value actually changed.
// Setting the value it already holds is a no-op that wakes nobody.
// After Close the cell is frozen and Set always reports false.
func (s *Sender[T]) Set(v T) bool {
	c := s.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.senderClosed || v == c.value {
		return false
	}
	c.value = v
	c.version++
	close(c.broadcast)
	c.broadcast = make(chan struct{})
	return true
}

// Get returns the current value.
func (s *Sender[T]) Get() T {
	c := s.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

// Close marks the sender side closed, freezing the value, and wakes every
// suspended Receiver so it can observe the frozen value. Idempotent.
func (s *Sender[T]) Close() {
	c := s.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.senderClosed {
		return
	}
	c.senderClosed = true
	close(c.broadcast)
}

// ReceiversGone reports whether every Receiver clone has been closed.
func (s *Sender[T]) ReceiversGone() bool {
	c := s.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.receiversGone
}

// Receiver is a read handle of a cell. Clones share the cell; all methods
// are safe for concurrent use, including on the same handle.
type Receiver[T comparable] struct {
	cell   *cell[T]
	seen   uint64 // last version observed by Wait/Changed on this handle
	closed bool
}

// Clone returns a new Receiver over the same cell. It panics if r was
// already closed: the receiver side closes irreversibly once the last
// clone is released, so a closed handle cannot mint live ones.
func (r *Receiver[T]) Clone() *Receiver[T] {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.closed {
		panic("watch: Clone of a closed Receiver")
	}
	c.receivers++
	return &Receiver[T]{cell: c, seen: r.seen}
}

// Get returns the current value. It never fails: after the Sender closes,
// the frozen value is still meaningful to readers.
func (r *Receiver[T]) Get() T {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

// Wait suspends until the value satisfies pred, returning immediately when
// it already does. It returns ErrSenderClosed only if the Sender closes
// while pred is still unmet, and ctx.Err() if ctx is done first.
// Abandoning a wait has no effect on the cell or on other waiters.
func (r *Receiver[T]) Wait(ctx context.Context, pred func(T) bool) error {
	c := r.cell
	for {
		c.mu.Lock()
		if pred(c.value) {
			r.seen = c.version
			c.mu.Unlock()
			return nil
		}
		if c.senderClosed {
			c.mu.Unlock()
			return ErrSenderClosed
		}
		wake := c.broadcast
		c.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Changed suspends until the value transitions past the version this handle
// last observed. It returns ErrSenderClosed if the Sender closes before a
// further transition, and ctx.Err() if ctx is done first.
func (r *Receiver[T]) Changed(ctx context.Context) error {
	c := r.cell
	for {
		c.mu.Lock()
		if c.version != r.seen {
			r.seen = c.version
			c.mu.Unlock()
			return nil
		}
		if c.senderClosed {
			c.mu.Unlock()
			return ErrSenderClosed
		}
		wake := c.broadcast
		c.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases this clone. When the last live clone is released the
// receiver side is marked gone, irreversibly. Idempotent.
func (r *Receiver[T]) Close() {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	c.receivers--
	if c.receivers == 0 {
		c.receiversGone = true
	}
}

// SenderClosed reports whether the Sender has been closed.
func (r *Receiver[T]) SenderClosed() bool {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.senderClosed
}
