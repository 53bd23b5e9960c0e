package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/internal/ident"
)

func TestFixedArrayRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	elems := []u32Val{1, 2, 3}
	require.NoError(t, WriteFixedArray(e, elems))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadFixedArray(d, 3, AlignUint32, readU32Val)
	require.NoError(t, err)
	require.Equal(t, elems, got)
}

func TestDynArrayEmptyWritesNullSentinels(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	a := DynArray[u32Val]{Identity: ident.New()}
	require.NoError(t, a.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	body := data[format.HeaderSize:]
	for i := 0; i < 24; i++ {
		require.Equal(t, byte(0xFF), body[i])
	}

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadDynArray(d, 4, AlignUint32, readU32Val)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDynArrayRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	a := DynArray[u32Val]{Identity: ident.New(), Elems: []u32Val{10, 20, 30}}
	require.NoError(t, a.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadDynArray(d, 4, AlignUint32, readU32Val)
	require.NoError(t, err)
	require.Equal(t, []u32Val{10, 20, 30}, got)
}

func TestArrayRefRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	a := ArrayRef[u32Val]{Identity: ident.New(), Elems: []u32Val{5, 6}}
	require.NoError(t, a.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	got, err := ReadArrayRef(d, 4, AlignUint32, readU32Val)
	require.NoError(t, err)
	require.Equal(t, []u32Val{5, 6}, got)
}
