package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/internal/ident"
)

type u32Val uint32

func (u32Val) Alignment() uint8 { return AlignUint32 }

func (u u32Val) WriteTo(e *codec.Encoder) error {
	WriteU32(e, uint32(u))
	return nil
}

func readU32Val(d *codec.Decoder) (u32Val, error) {
	v, err := d.ReadU32()
	return u32Val(v), err
}

func TestPtrRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	p := Ptr[u32Val]{Identity: ident.New(), Elem: u32Val(42)}
	require.NoError(t, p.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadPtr(d, readU32Val)
	require.NoError(t, err)
	require.Equal(t, u32Val(42), got)
}

func TestOptPtrAbsentWritesNullSentinel(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	p := OptPtr[u32Val]{Present: false}
	require.NoError(t, p.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	_, ok, err := ReadOptPtr(d, readU32Val)
	require.NoError(t, err)
	require.False(t, ok)

	body := data[format.HeaderSize:]
	for _, b := range body[:8] {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestOptPtrPresentRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	id := ident.New()
	p := OptPtr[u32Val]{Identity: id, Elem: u32Val(7), Present: true}
	require.NoError(t, p.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, ok, err := ReadOptPtr(d, readU32Val)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, u32Val(7), got)
}

func TestOptPtrZeroNullAbsentWritesZero(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	p := OptPtrZeroNull[u32Val]{Present: false}
	require.NoError(t, p.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	// No pointer was registered, so Finish should not have touched the
	// rebased-pointers segment at all.
	require.Equal(t, uint8(0), data[6])

	body := data[format.HeaderSize:]
	for _, b := range body[:8] {
		require.Equal(t, byte(0), b)
	}

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	_, ok, err := ReadOptPtrZeroNull(d, readU32Val)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOptPtrZeroNullPresentRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	id := ident.New()
	p := OptPtrZeroNull[u32Val]{Identity: id, Elem: u32Val(99), Present: true}
	require.NoError(t, p.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, ok, err := ReadOptPtrZeroNull(d, readU32Val)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, u32Val(99), got)
}
