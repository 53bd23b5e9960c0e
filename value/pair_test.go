package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/codec"
)

type u8Val uint8

func (u8Val) Alignment() uint8 { return AlignUint8 }

func (u u8Val) WriteTo(e *codec.Encoder) error {
	WriteU8(e, uint8(u))
	return nil
}

func readU8Val(d *codec.Decoder) (u8Val, error) {
	v, err := d.ReadU8()
	return u8Val(v), err
}

func TestPairAlignmentIsMax(t *testing.T) {
	p := Pair[u8Val, u32Val]{First: 1, Second: 2}
	require.Equal(t, AlignUint32, p.Alignment())
}

func TestPairRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	p := Pair[u8Val, u32Val]{First: 9, Second: 1000}
	require.NoError(t, p.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	first, second, err := ReadPair(d, AlignUint32, readU8Val, readU32Val)
	require.NoError(t, err)
	require.Equal(t, u8Val(9), first)
	require.Equal(t, u32Val(1000), second)
}
