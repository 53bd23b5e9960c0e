package value

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/format"
)

// ResourceID is a ZRuntimeResourceID: an 8-byte (IDHigh, IDLow) pair
// written unaligned and recorded in the appended resource-ids segment so
// a resource scanner can find every reference without walking the tree.
type ResourceID struct {
	IDHigh uint32
	IDLow  uint32
}

// Alignment is always 8, even though the field itself is written
// unaligned — callers that compose a ResourceID into a Record still need
// to start it on an 8-byte boundary.
func (ResourceID) Alignment() uint8 { return format.Alignment }

// Size is the fixed 8-byte wire size.
func (ResourceID) Size() uint32 { return 8 }

// WriteTo writes the (high, low) pair and records it in the encoder's
// resource-ids side table.
func (r ResourceID) WriteTo(e *codec.Encoder) error {
	e.WriteRuntimeResourceID(r.IDHigh, r.IDLow)
	return nil
}

// ReadResourceID decodes a ZRuntimeResourceID field.
func ReadResourceID(d *codec.Decoder) (ResourceID, error) {
	high, err := d.ReadU32()
	if err != nil {
		return ResourceID{}, err
	}

	low, err := d.ReadU32()
	if err != nil {
		return ResourceID{}, err
	}

	return ResourceID{IDHigh: high, IDLow: low}, nil
}

// ResourcePtr is a TResourcePtr: wire-identical to ResourceID (an 8-byte
// IDHigh/IDLow pair) and, like it, recorded in the resource-ids segment —
// the schema distinguishes an owned resource id from a borrowed resource
// pointer, but both are offsets a resource scanner needs to find, so they
// share the one segment kind the format defines.
type ResourcePtr struct {
	IDHigh uint32
	IDLow  uint32
}

// Alignment is always 8.
func (ResourcePtr) Alignment() uint8 { return format.Alignment }

// Size is the fixed 8-byte wire size.
func (ResourcePtr) Size() uint32 { return 8 }

// WriteTo writes the (high, low) pair and records it in the encoder's
// resource-ids side table, same as ResourceID.
func (r ResourcePtr) WriteTo(e *codec.Encoder) error {
	e.WriteRuntimeResourceID(r.IDHigh, r.IDLow)
	return nil
}

// ReadResourcePtr decodes a TResourcePtr field.
func ReadResourcePtr(d *codec.Decoder) (ResourcePtr, error) {
	high, err := d.ReadU32()
	if err != nil {
		return ResourcePtr{}, err
	}

	low, err := d.ReadU32()
	if err != nil {
		return ResourcePtr{}, err
	}

	return ResourcePtr{IDHigh: high, IDLow: low}, nil
}
