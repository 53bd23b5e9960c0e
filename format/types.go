// Package format defines the on-disk constants shared by the BIN1 image
// codec: the magic bytes, the fixed alignment, and the segment kinds
// appended after the body.
package format

// SegmentKind identifies one of the appended side tables in a BIN1 image.
type SegmentKind uint32

const (
	// KindRebasedPointers marks the segment listing body offsets whose
	// 8-byte slot held a pointer identity until finalization.
	KindRebasedPointers SegmentKind = 0x12EBA5ED

	// KindTypeIDs marks the segment carrying type-id fix-up offsets plus
	// the interned type-name table.
	KindTypeIDs SegmentKind = 0x3989BF9F

	// KindResourceIDs marks the segment listing body offsets of
	// runtime-resource ids.
	KindResourceIDs SegmentKind = 0x578FBCEE
)

func (k SegmentKind) String() string {
	switch k {
	case KindRebasedPointers:
		return "RebasedPointers"
	case KindTypeIDs:
		return "TypeIDs"
	case KindResourceIDs:
		return "ResourceIDs"
	default:
		return "Unknown"
	}
}

const (
	// Magic is the 4-byte identifier at the start of every BIN1 image.
	Magic = "BIN1"

	// Alignment is the fixed body/segment alignment byte written into the
	// header. The format has no negotiation for this value.
	Alignment = 8

	// PointerBias is the fixed offset added to a body-relative pointer
	// value before it is followed. Preserved unconditionally, per the
	// source format, as a serializer convention rather than a derived
	// quantity.
	PointerBias = 0x10

	// NullSentinel is the all-ones 64-bit value used for an absent
	// pointer, and for empty TArray begin/end/capacity-end slots.
	NullSentinel = ^uint64(0)

	// HeaderSize is the fixed size, in bytes, of the BIN1 header.
	HeaderSize = 16

	// StringExternalFlag is OR'd into a ZString's 32-bit length word to
	// mark the bytes as externally allocated (the only mode this codec
	// produces).
	StringExternalFlag = 0x40000000
)
