package gate

import "fmt"

// Gateway is the two-valued state of a gate: Raised or Lowered.
type Gateway int

const (
	// Lowered is the state a gate is in after Lever.Lower.
	Lowered Gateway = iota
	// Raised is the state a gate is in after Lever.Raise.
	Raised
)

// Not returns the opposite state.
func (g Gateway) Not() Gateway {
	if g == Raised {
		return Lowered
	}
	return Raised
}

func (g Gateway) String() string {
	if g == Raised {
		return "Raised"
	}
	return "Lowered"
}

// ParseGateway is the inverse of Gateway.String. Any input other than
// "Raised" or "Lowered" fails with ErrParseGateway.
func ParseGateway(s string) (Gateway, error) {
	switch s {
	case "Raised":
		return Raised, nil
	case "Lowered":
		return Lowered, nil
	}
	return 0, fmt.Errorf("parse gateway '%s': %w", s, ErrParseGateway)
}
