package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/errs"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/internal/ident"
)

func TestEncoderWriteAlignedPads(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	e.WriteUnaligned([]byte{1})
	e.WriteAligned([]byte{2, 3, 4, 5, 6, 7, 8}, 8)

	require.Equal(t, 0, e.Len()%8)
}

func TestEncoderPointeeSharing(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	id := ident.New()
	writes := 0
	write := func(enc *Encoder) error {
		writes++
		enc.WriteUnaligned([]byte{0xAB})

		return nil
	}

	require.NoError(t, e.WritePointee(id, 1, nil, write))
	require.NoError(t, e.WritePointee(id, 1, nil, write))

	require.Equal(t, 1, writes)
}

func TestEncoderFinishPatchesPointer(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	id := ident.New()
	e.WritePointer(id)
	require.NoError(t, e.WritePointee(id, 1, nil, func(enc *Encoder) error {
		enc.WriteUnaligned([]byte{0x42})
		return nil
	}))

	data, err := e.Finish()
	require.NoError(t, err)
	require.Equal(t, byte('B'), data[0])
	require.Equal(t, uint8(1), data[6]) // one segment: rebased pointers
}

func TestEncoderFinishNullPointerUnpatched(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	e.WritePointer(format.NullSentinel)

	data, err := e.Finish()
	require.NoError(t, err)

	body := data[format.HeaderSize:]
	for _, b := range body[:8] {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestEncoderFinishUnresolvedPointerErrors(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	e.WritePointer(ident.New())

	_, err = e.Finish()
	require.ErrorIs(t, err, errs.ErrUnresolvedPointer)
}

func TestEncoderWriteTypeInterns(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	e.WriteType("SActorTemplate")
	e.WriteType("SWeaponTemplate")
	e.WriteType("SActorTemplate")

	data, err := e.Finish()
	require.NoError(t, err)
	require.Equal(t, uint8(1), data[6])

	// Indices in the body: 0, 1, then 0 again for the repeated name.
	require.Equal(t, byte(1), data[format.HeaderSize+8])
	require.Equal(t, byte(0), data[format.HeaderSize+16])
}
