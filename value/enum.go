package value

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/errs"
)

// Enum is a backed-integer field with an explicit discriminant table:
// Names maps every known discriminant to its schema name. WriteTo does
// not consult Names; decoding takes its own table (see ReadEnum). Width
// is the storage width in bytes (1, 2, 4, or 8); the zero value defaults
// to 4.
type Enum struct {
	Value int64
	Width uint8
	Names map[int64]string
}

func (e Enum) width() uint8 {
	if e.Width == 0 {
		return 4
	}

	return e.Width
}

// Alignment equals the storage width.
func (e Enum) Alignment() uint8 { return e.width() }

// Size equals the storage width.
func (e Enum) Size() uint32 { return uint32(e.width()) }

// WriteTo writes Value in Width bytes, little-endian.
func (e Enum) WriteTo(enc *codec.Encoder) error {
	switch e.width() {
	case 1:
		WriteI8(enc, int8(e.Value))
	case 2:
		WriteI16(enc, int16(e.Value))
	case 4:
		WriteI32(enc, int32(e.Value))
	case 8:
		WriteI64(enc, e.Value)
	default:
		return &errs.InvalidEnumValueError{Value: e.Value}
	}

	return nil
}

func enumError(name string, value int64) error {
	return &errs.InvalidEnumValueError{EnumName: name, Value: value}
}

func readBackedValue(d *codec.Decoder, width uint8, enumName string) (int64, error) {
	switch width {
	case 1:
		v, err := d.ReadI8()
		return int64(v), err
	case 2:
		v, err := d.ReadI16()
		return int64(v), err
	case 4:
		v, err := d.ReadI32()
		return int64(v), err
	case 8:
		return d.ReadI64()
	default:
		return 0, enumError(enumName, 0)
	}
}

// ReadEnum decodes a width-byte backed enum field with a declared,
// inhabited discriminant set. A stored value with no entry in names is
// always fatal — DecodeOptions.StrictEnums has no effect here, since that
// option only controls the separate uninhabited-fallback leniency (see
// ReadUninhabitedEnum).
func ReadEnum(d *codec.Decoder, width uint8, names map[int64]string, enumName string) (int64, error) {
	value, err := readBackedValue(d, width, enumName)
	if err != nil {
		return 0, err
	}

	if _, known := names[value]; !known {
		return 0, enumError(enumName, value)
	}

	return value, nil
}

// ReadUninhabitedEnum decodes the width-byte backed "Value" fallback used
// by enums with zero declared discriminants: every stored value is, by
// definition, outside the (empty) declared set, so decoding always
// succeeds but is accompanied by a warning unless strict is true, in
// which case it is a hard error instead. strict is
// DecodeOptions.StrictEnums; warn is DecodeOptions.EnumWarn.
func ReadUninhabitedEnum(d *codec.Decoder, width uint8, enumName string, strict bool, warn func(string, int64)) (int64, error) {
	value, err := readBackedValue(d, width, enumName)
	if err != nil {
		return 0, err
	}

	if strict {
		return 0, enumError(enumName, value)
	}

	if warn != nil {
		warn(enumName, value)
	}

	return value, nil
}

// UninhabitedEnumValue is the wire constant an uninhabited enum's single
// "Value" fallback variant always encodes. ReadUninhabitedEnum gives it no
// special treatment: like any other stored value it is accepted with a
// warning, or rejected when strict is true.
const UninhabitedEnumValue int64 = 1
