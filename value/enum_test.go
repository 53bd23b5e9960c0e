package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/errs"
)

func TestEnumRoundTrip(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	en := Enum{Value: 2, Width: 4, Names: map[int64]string{0: "A", 1: "B", 2: "C"}}
	require.NoError(t, en.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	v, err := ReadEnum(d, 4, en.Names, "MyEnum")
	require.NoError(t, err)
	require.Equal(t, int64(2), v)
}

func TestEnumAlwaysRejectsUnknownRegardlessOfStrictEnums(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	en := Enum{Value: 99, Width: 1}
	require.NoError(t, en.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	// A regular (inhabited) enum's unknown discriminant is fatal even
	// though StrictEnums (the uninhabited-fallback leniency toggle) is
	// left at its lenient default.
	_, err = ReadEnum(d, 1, map[int64]string{0: "A"}, "MyEnum")
	require.ErrorIs(t, err, errs.ErrInvalidEnumValue)
}

func TestUninhabitedEnumLenientByDefault(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	en := Enum{Value: 99, Width: 1}
	require.NoError(t, en.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	var warned int64 = -1

	v, err := ReadUninhabitedEnum(d, 1, "MyUninhabitedEnum", false, func(name string, got int64) {
		warned = got
	})
	require.NoError(t, err)
	require.Equal(t, int64(99), v)
	require.Equal(t, int64(99), warned)
}

func TestUninhabitedEnumStrictIsFatal(t *testing.T) {
	e, err := codec.NewEncoder()
	require.NoError(t, err)

	en := Enum{Value: 99, Width: 1}
	require.NoError(t, en.WriteTo(e))

	data, err := e.Finish()
	require.NoError(t, err)

	d, err := codec.NewDecoder(data)
	require.NoError(t, err)

	_, err = ReadUninhabitedEnum(d, 1, "MyUninhabitedEnum", true, nil)
	require.ErrorIs(t, err, errs.ErrInvalidEnumValue)
}

func TestUninhabitedEnumEncodesOne(t *testing.T) {
	require.Equal(t, int64(1), UninhabitedEnumValue)
}
