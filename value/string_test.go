package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/codec"
)

func TestStringRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	s := String{Value: "hello world"}
	require.NoError(t, s.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadString(d)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
}

func TestStringContentAddressedDeduplicates(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	a := String{Value: "shared"}
	b := String{Value: "shared"}

	lenBefore := e.Len()
	require.NoError(t, a.WriteTo(e))
	lenAfterA := e.Len()
	require.NoError(t, b.WriteTo(e))
	lenAfterB := e.Len()

	growthA := lenAfterA - lenBefore
	growthB := lenAfterB - lenAfterA

	// a's write appends both its inline fields and the backing "shared\0"
	// bytes; b shares a's identity, so its write appends only its own
	// inline fields — proving the pointee was written exactly once.
	require.Less(t, growthB, growthA)

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got1, err := ReadString(d)
	require.NoError(t, err)
	got2, err := ReadString(d)
	require.NoError(t, err)
	require.Equal(t, "shared", got1)
	require.Equal(t, "shared", got2)
}

func TestStringExplicitIdentityOverridesContentAddressing(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	s := String{Value: "explicit", Identity: 0xCAFEBABE}
	require.NoError(t, s.WriteTo(e))

	_, err = e.Finish()
	require.NoError(t, err)
}

func TestCStringRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	c := CString{Value: "inline"}
	require.NoError(t, c.WriteTo(e))
	WriteU8(e, 0xAB)

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadCString(d)
	require.NoError(t, err)
	require.Equal(t, "inline", got)

	marker, err := d.ReadU8()
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), marker)
}
