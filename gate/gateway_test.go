package gate_test

import (
	"testing"

	"github.com/quintans/go-gate/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayNot(t *testing.T) {
	assert.Equal(t, gate.Lowered, gate.Raised.Not())
	assert.Equal(t, gate.Raised, gate.Lowered.Not())
	assert.Equal(t, gate.Raised, gate.Raised.Not().Not())
}

func TestGatewayString(t *testing.T) {
	assert.Equal(t, "Raised", gate.Raised.String())
	assert.Equal(t, "Lowered", gate.Lowered.String())
}

func TestParseGateway(t *testing.T) {
	for _, gw := range []gate.Gateway{gate.Raised, gate.Lowered} {
		parsed, err := gate.ParseGateway(gw.String())
		require.NoError(t, err)
		assert.Equal(t, gw, parsed)
	}

	_, err := gate.ParseGateway("ajar")
	require.ErrorIs(t, err, gate.ErrParseGateway)

	// case sensitive, like the String output
	_, err = gate.ParseGateway("raised")
	require.ErrorIs(t, err, gate.ErrParseGateway)
}
