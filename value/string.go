package value

import (
	"encoding/binary"

	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/internal/ident"
)

// String is a ZString field: a length-tagged word followed by a pointer
// to interned UTF-8 bytes plus a trailing null terminator. Declared
// layout alignment is 4 (matching the length word alone, for outer
// Record/array layout math), but both the length and pointer sub-fields
// are actually written and read 8-aligned — this codec follows the
// decoder's real behavior rather than the looser declared alignment, so
// a round trip is correct regardless of what precedes a String field.
type String struct {
	Value string
	// Identity, if nonzero, pins the pointee identity explicitly
	// (for caller-controlled sharing). Zero means "derive
	// automatically": content-addressed by default, per
	// codec.EncodeOptions.ContentAddressedStrings, or freshly minted
	// if that option is off.
	Identity uint64
}

// Alignment reports the layout-contract alignment (4), used by
// composing Record/array field layout, not the internal write alignment.
func (String) Alignment() uint8 { return AlignUint32 }

// Size is the fixed 16-byte wire size of a ZString field (4-byte length
// word, 4 bytes of padding to the pointer's own alignment, 8-byte
// pointer).
func (String) Size() uint32 { return 16 }

func (s String) identity(e *codec.Encoder) uint64 {
	if s.Identity != 0 {
		return s.Identity
	}

	if e.Opts.ContentAddressedStrings {
		return ident.FromString(s.Value)
	}

	return ident.New()
}

// WriteTo writes the length word (tagged with format.StringExternalFlag),
// the pointer field, and — unless this string's identity was already
// written — its UTF-8 bytes plus a null terminator.
func (s String) WriteTo(e *codec.Encoder) error {
	e.AlignTo(format.Alignment)

	var lenBytes [4]byte
	binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(s.Value))|format.StringExternalFlag)
	e.WriteUnaligned(lenBytes[:])

	identity := s.identity(e)
	e.WritePointer(identity)

	return e.WritePointee(identity, 1, nil, func(enc *codec.Encoder) error {
		enc.WriteUnaligned([]byte(s.Value))
		enc.WriteUnaligned([]byte{0})

		return nil
	})
}

// ReadString decodes a ZString field.
func ReadString(d *codec.Decoder) (string, error) {
	return d.ReadZString()
}

// CString is an unmanaged, non-interned, null-terminated string written
// inline with no length prefix and alignment 1 — the legacy form some
// schema fields use instead of String/ZString.
type CString struct {
	Value string
}

// Alignment is always 1.
func (CString) Alignment() uint8 { return 1 }

// WriteTo writes the UTF-8 bytes followed by a null terminator, inline.
func (c CString) WriteTo(e *codec.Encoder) error {
	e.WriteUnaligned([]byte(c.Value))
	e.WriteUnaligned([]byte{0})

	return nil
}

// ReadCString reads bytes up to (and consuming) the next null
// terminator, starting at the decoder's current position.
func ReadCString(d *codec.Decoder) (string, error) {
	var out []byte

	for {
		b, err := d.ReadU8()
		if err != nil {
			return "", err
		}

		if b == 0 {
			break
		}

		out = append(out, b)
	}

	return string(out), nil
}
