// Package layout declares the alignment/size contract every BIN1-aware
// type must honor (spec §4.1): a constant byte boundary its record starts
// on, and — for decoding — the number of body bytes its record occupies
// before any pointer it holds is followed.
package layout

// Aligned is implemented by every type that can appear in a BIN1 value
// tree. Alignment must be one of 1, 2, 4, 8.
type Aligned interface {
	Alignment() uint8
}

// Sized is implemented by every type that can be read back out of a BIN1
// image. Size is the number of body bytes consumed for one record of the
// type, not counting bytes reached by following a pointer.
type Sized interface {
	Aligned
	Size() uint32
}

// PadTo returns the number of zero-padding bytes required to bring length
// up to a multiple of alignment.
func PadTo(length int, alignment uint8) int {
	a := int(alignment)
	rem := length % a
	if rem == 0 {
		return 0
	}

	return a - rem
}

// AlignUp rounds length up to the next multiple of alignment.
func AlignUp(length int, alignment uint8) int {
	return length + PadTo(length, alignment)
}

// Max returns the larger of two alignments.
//
// Composite alignment (record, pair) is the max of its parts' alignments;
// the pair case specifically resolves the spec's pair-alignment Open
// Question in favor of max(T,U), matching the authoritative h3 behavior.
func Max(a, b uint8) uint8 {
	if a > b {
		return a
	}

	return b
}

// FieldLayout is one field's size, alignment, and explicit pre/post
// padding, as consumed by RecordSize to compute a record's SIZE per spec
// §4.1: each field contributes pre-pad + its own size, then padding out to
// the next field's alignment; the whole record is padded to its own (max)
// alignment at the end.
type FieldLayout struct {
	PrePad  int
	Size    uint32
	PostPad int
	Align   uint8
}

// RecordSize and RecordAlignment compute the layout contract for an
// ordered list of fields, mirroring how the record codec lays out bytes.
func RecordSize(fields []FieldLayout) uint32 {
	total := 0
	recordAlign := uint8(1)

	for i, f := range fields {
		recordAlign = Max(recordAlign, f.Align)
		total += f.PrePad
		total = AlignUp(total, f.Align)
		total += int(f.Size)
		total += f.PostPad

		if i+1 < len(fields) {
			total = AlignUp(total, fields[i+1].Align)
		}
	}

	total = AlignUp(total, recordAlign)

	return uint32(total)
}

// RecordAlignment returns the max alignment across all fields (1 if none).
func RecordAlignment(fields []FieldLayout) uint8 {
	align := uint8(1)
	for _, f := range fields {
		align = Max(align, f.Align)
	}

	return align
}
