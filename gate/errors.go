package gate

import (
	"errors"
	"fmt"
)

var (
	// ErrGateDropped is returned by Lever.Raise and Lever.Lower once every
	// Gate clone has been closed: there is nothing left to notify.
	ErrGateDropped = errors.New("gate was dropped")
	// ErrLeverDroppedWhileRaised is returned by Gate.Lowered when the Lever
	// was closed while the state was Raised, so it can never lower again.
	ErrLeverDroppedWhileRaised = errors.New("lever was dropped while raised")
	// ErrLeverDroppedWhileLowered is returned by Gate.Raised when the Lever
	// was closed while the state was Lowered, so it can never raise again.
	ErrLeverDroppedWhileLowered = errors.New("lever was dropped while lowered")
	// ErrParseGateway is returned by ParseGateway for unknown input.
	ErrParseGateway = errors.New("provided string was not `Raised` or `Lowered`")
)

// BeforeGateDroppedError is returned by the Lever's state queries once every
// Gate clone is gone. It carries the state the gate was frozen at, so the
// caller can still learn the final value.
type BeforeGateDroppedError struct {
	Last Gateway
}

func (e *BeforeGateDroppedError) Error() string {
	return fmt.Sprintf("gate was %s before dropping", e.Last)
}
