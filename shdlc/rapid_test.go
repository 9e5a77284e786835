package shdlc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmorrel/shdlc-go/shdlc"
	"pgregory.net/rapid"
)

// Payloads mix arbitrary bytes with the reserved values, so the escape paths
// are hit often.  The minimum length is 1 because the empty payload's frame
// falls below the decode floor.
var payloadBytes = rapid.SliceOfN(
	rapid.OneOf(
		rapid.Byte(),
		rapid.SampledFrom([]byte{0x7d, 0x7e, 0x11, 0x13}),
	),
	1, 256,
)

func drawPayload(t *rapid.T) []byte {
	return payloadBytes.Draw(t, "payload").([]byte)
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := drawPayload(t)
		// The conservative precheck needs capacity/2 - 2 >= len(payload).
		capacity := 2*len(payload) + 4
		encoded, err := shdlc.Encode(payload, capacity)
		require.NoError(t, err)
		decoded, err := shdlc.Decode(encoded, len(payload))
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	})
}

func TestEncodedInteriorContainsNoReservedBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := drawPayload(t)
		encoded, err := shdlc.Encode(payload, 2*len(payload)+4)
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(encoded), 2)
		assert.Equal(t, shdlc.FrameBoundaryMarker, encoded[0])
		assert.Equal(t, shdlc.FrameBoundaryMarker, encoded[len(encoded)-1])

		interior := encoded[1 : len(encoded)-1]
		for i := 0; i < len(interior); i++ {
			switch interior[i] {
			case shdlc.EscapeMarker:
				require.Less(t, i+1, len(interior))
				assert.Contains(t, []byte{0x5d, 0x5e, 0x31, 0x33}, interior[i+1])
				i++
			case shdlc.FrameBoundaryMarker, 0x11, 0x13:
				t.Fatalf("unescaped reserved byte %#02x at interior index %d", interior[i], i)
			}
		}
	})
}

func TestPrecheckRejectsTightCapacities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := drawPayload(t)
		// Any capacity at most 2*len+3 fails len > capacity/2 - 2.
		capacity := rapid.IntRange(0, 2*len(payload)+3).Draw(t, "capacity").(int)
		_, err := shdlc.Encode(payload, capacity)
		assert.Equal(t, shdlc.TooMuchData, err)
	})
}
