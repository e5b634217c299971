package gate

import (
	"github.com/quintans/go-gate/internal/watch"
)

// Lever is the unique handle that raises and lowers the gate it was created
// with. It is not cloneable: only New produces one, so there is exactly one
// point of mutation per gate.
type Lever struct {
	sender *watch.Sender[Gateway]
}

// Raise sets the gate to Raised, waking every task suspended in Gate.Raised.
// Raising an already raised gate is a no-op that wakes nobody.
// It returns ErrGateDropped if every Gate clone has been closed; the Lever
// remains usable afterwards.
func (l *Lever) Raise() error {
	if l.GateWasDropped() {
		return ErrGateDropped
	}
	l.sender.Set(Raised)
	return nil
}

// Lower sets the gate to Lowered, waking every task suspended in Gate.Lowered.
// Lowering an already lowered gate is a no-op that wakes nobody.
// It returns ErrGateDropped if every Gate clone has been closed; the Lever
// remains usable afterwards.
func (l *Lever) Lower() error {
	if l.GateWasDropped() {
		return ErrGateDropped
	}
	l.sender.Set(Lowered)
	return nil
}

// IsRaised reports whether the gate is currently raised.
// Once every Gate clone has been closed it fails with a
// *BeforeGateDroppedError carrying the state the gate was frozen at.
func (l *Lever) IsRaised() (bool, error) {
	gateway := l.sender.Get()
	if l.GateWasDropped() {
		return false, &BeforeGateDroppedError{Last: gateway}
	}
	return gateway == Raised, nil
}

// IsLowered reports whether the gate is currently lowered.
// Once every Gate clone has been closed it fails with a
// *BeforeGateDroppedError carrying the state the gate was frozen at.
func (l *Lever) IsLowered() (bool, error) {
	gateway := l.sender.Get()
	if l.GateWasDropped() {
		return false, &BeforeGateDroppedError{Last: gateway}
	}
	return gateway == Lowered, nil
}

// GateWasDropped reports whether every Gate clone has been closed.
func (l *Lever) GateWasDropped() bool {
	return l.sender.ReceiversGone()
}

// Close releases the Lever. The gate freezes at its current state and every
// suspended waiter wakes to observe it. Idempotent; after Close the Lever
// must no longer be used to mutate the gate.
func (l *Lever) Close() {
	l.sender.Close()
}
