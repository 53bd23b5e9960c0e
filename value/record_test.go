package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/codec"
)

func TestRecordWriteToAppliesPadding(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	r := Record{Fields: []Field{
		{Name: "a", Value: u8Val(1)},
		{Name: "b", Value: u32Val(2), PrePad: 3},
	}}
	require.NoError(t, r.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	a, err := readU8Val(d)
	require.NoError(t, err)
	require.Equal(t, u8Val(1), a)

	require.NoError(t, d.Skip(3))

	b, err := readU32Val(d)
	require.NoError(t, err)
	require.Equal(t, u32Val(2), b)
}

func TestRecordAlignmentIsMaxField(t *testing.T) {
	r := Record{Fields: []Field{
		{Name: "a", Value: u8Val(1)},
		{Name: "b", Value: u32Val(2)},
	}}
	require.Equal(t, AlignUint32, r.Alignment())
}

func TestRecordLayoutMatchesManualFields(t *testing.T) {
	size, align := RecordLayout([]FieldDescriptor{
		{Alignment: AlignUint8, Size: 1},
		{Alignment: AlignUint32, Size: 4},
	})

	require.Equal(t, uint8(4), align)
	require.Equal(t, uint32(8), size)
}
