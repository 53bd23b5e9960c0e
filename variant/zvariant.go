package variant

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/errs"
	"github.com/hitman-tools/bin1/format"
)

// voidTypeID is the wire type-id string a ZVariant field writes when it
// carries no value at all, mirroring the h3 game module's treatment of
// "void" as a sentinel type name rather than a dedicated wire flag.
const voidTypeID = "void"

// ZVariant is an open-typed field: a type-id string naming which
// registered type follows, plus a pointer to that type's encoded form —
// or, for an absent value, the type-id "void" and a null pointer.
type ZVariant struct {
	Identity uint64
	Inner    Variant
}

// Alignment is always 8.
func (ZVariant) Alignment() uint8 { return format.Alignment }

// WriteTo writes the type-id field followed by the pointer field and, for
// a non-void value, the pointee.
func (v ZVariant) WriteTo(e *codec.Encoder) error {
	if v.Inner == nil {
		e.WriteType(voidTypeID)
		e.WritePointer(format.NullSentinel)

		return nil
	}

	e.WriteType(v.Inner.TypeID())
	e.WritePointer(v.Identity)

	return e.WritePointee(v.Identity, v.Inner.Alignment(), nil, v.Inner.WriteTo)
}

// ReadZVariant decodes a ZVariant field using r to resolve the type-id
// string to a decode function. A "void" type-id decodes to a ZVariant
// with a nil Inner and no pointer resolution.
func ReadZVariant(d *codec.Decoder, r *Registry) (ZVariant, error) {
	typeID, err := d.ReadType()
	if err != nil {
		return ZVariant{}, err
	}

	ptr, err := d.ReadPointerValue()
	if err != nil {
		return ZVariant{}, err
	}

	if typeID == voidTypeID {
		return ZVariant{}, nil
	}

	decode, ok := r.lookup(typeID)
	if !ok {
		return ZVariant{}, &errs.UnknownTypeError{TypeID: typeID}
	}

	inner, err := codec.ResolvePointer(d, ptr, decode)
	if err != nil {
		return ZVariant{}, err
	}

	return ZVariant{Inner: inner}, nil
}
