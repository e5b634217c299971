// Package gate provides a two-state signaling primitive: one Lever raises
// and lowers a shared condition, and any number of Gate clones either poll
// it instantly or suspend until it reaches the value they need.
package gate

import (
	"context"
	"errors"

	"github.com/quintans/go-gate/internal/watch"
)

// Gate is a read handle on the shared state. Gates are cloned for fan-out;
// every clone observes the same underlying gate. All methods are safe for
// concurrent use.
type Gate struct {
	receiver *watch.Receiver[Gateway]
}

// Clone returns a new Gate over the same shared state. It panics if g was
// already closed.
func (g *Gate) Clone() *Gate {
	return &Gate{receiver: g.receiver.Clone()}
}

// IsRaised reports whether the gate is currently raised. It never fails,
// even after the Lever is closed: the frozen value is still meaningful.
func (g *Gate) IsRaised() bool {
	return g.receiver.Get() == Raised
}

// IsLowered reports whether the gate is currently lowered. It never fails,
// even after the Lever is closed.
func (g *Gate) IsLowered() bool {
	return g.receiver.Get() == Lowered
}

// Raised suspends until the gate is raised, returning immediately when it
// already is. It returns ErrLeverDroppedWhileLowered if the Lever is closed
// while the gate is still lowered, and ctx.Err() if ctx is done first.
func (g *Gate) Raised(ctx context.Context) error {
	err := g.receiver.Wait(ctx, func(gw Gateway) bool { return gw == Raised })
	if errors.Is(err, watch.ErrSenderClosed) {
		return ErrLeverDroppedWhileLowered
	}
	return err
}

// Lowered suspends until the gate is lowered, returning immediately when it
// already is. It returns ErrLeverDroppedWhileRaised if the Lever is closed
// while the gate is still raised, and ctx.Err() if ctx is done first.
func (g *Gate) Lowered(ctx context.Context) error {
	err := g.receiver.Wait(ctx, func(gw Gateway) bool { return gw == Lowered })
	if errors.Is(err, watch.ErrSenderClosed) {
		return ErrLeverDroppedWhileRaised
	}
	return err
}

// LeverWasDropped reports whether the Lever has been closed.
func (g *Gate) LeverWasDropped() bool {
	return g.receiver.SenderClosed()
}

// Close releases this clone. Once the last clone is closed the Lever's
// mutations start failing with ErrGateDropped. Idempotent.
func (g *Gate) Close() {
	g.receiver.Close()
}

// New creates a gate in the given initial state and returns the one Lever
// that can raise and lower it together with the first Gate observing it.
func New(initial Gateway) (*Lever, *Gate) {
	sender, receiver := watch.New(initial)

	lever := &Lever{sender: sender}
	gate := &Gate{receiver: receiver}

	return lever, gate
}

// NewRaised creates a gate that starts raised.
func NewRaised() (*Lever, *Gate) {
	return New(Raised)
}

// NewLowered creates a gate that starts lowered.
func NewLowered() (*Lever, *Gate) {
	return New(Lowered)
}
