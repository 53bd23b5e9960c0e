package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/codec"
)

func TestResourceIDRoundTripAndSegment(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	r := ResourceID{IDHigh: 0x1111, IDLow: 0x2222}
	require.NoError(t, r.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)
	require.Equal(t, uint8(1), data[6]) // one segment: resource-ids

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadResourceID(d)
	require.NoError(t, err)
	require.Equal(t, r, got)
}

func TestResourcePtrRoundTripAndSegment(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	r := ResourcePtr{IDHigh: 0x3333, IDLow: 0x4444}
	require.NoError(t, r.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)
	require.Equal(t, uint8(1), data[6])

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadResourcePtr(d)
	require.NoError(t, err)
	require.Equal(t, r, got)
}
