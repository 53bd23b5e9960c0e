// Package codec implements the BIN1 serializer and deserializer engine:
// the low-level cursor, alignment, pointer-patching, and type/resource-id
// bookkeeping that every value type in the value package is built on.
package codec

import (
	"encoding/binary"

	"github.com/hitman-tools/bin1/errs"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/internal/pool"
	"github.com/hitman-tools/bin1/layout"
	"github.com/hitman-tools/bin1/section"
)

// Encoder accumulates a BIN1 image's body, recording every pointer field,
// type id, and runtime resource id it writes so Finish can build the
// appended segments and patch forward references.
type Encoder struct {
	buf *pool.ByteBuffer

	// offsets maps a pointee's identity token to the body offset it was
	// written at.
	offsets map[uint64]uint64
	// pointers holds the body offset of every pointer field written,
	// each of which needs patching once its pointee's offset is known.
	pointers []uint32
	// runtimeResourceIDs holds the body offset of every written
	// ZRuntimeResourceID, purely for the appended side table.
	runtimeResourceIDs []uint32
	// typeIDs holds the body offset of every written type-id field.
	typeIDs []uint32

	types *section.TypeTable

	// Opts holds the resolved construction options; value types in the
	// value package read it to choose an identity strategy.
	Opts EncodeOptions
}

// NewEncoder returns a ready-to-use Encoder with its body buffer drawn
// from the shared encoder pool.
func NewEncoder(opts ...EncodeOption) (*Encoder, error) {
	o, err := newEncodeOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		buf:     pool.GetEncoderBuffer(),
		offsets: make(map[uint64]uint64),
		types:   section.NewTypeTable(),
		Opts:    o,
	}, nil
}

// Len reports the number of bytes written to the body so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// AlignTo pads the body with zero bytes until its length is a multiple of
// alignment.
func (e *Encoder) AlignTo(alignment uint8) {
	pad := layout.PadTo(e.buf.Len(), alignment)
	if pad > 0 {
		e.buf.MustWrite(make([]byte, pad))
	}
}

// WriteUnaligned appends data to the body without padding.
func (e *Encoder) WriteUnaligned(data []byte) {
	e.buf.MustWrite(data)
}

// WriteAligned pads to alignment, writes data, then pads to alignment
// again so the next field starts cleanly.
func (e *Encoder) WriteAligned(data []byte, alignment uint8) {
	e.AlignTo(alignment)
	e.buf.MustWrite(data)
	e.AlignTo(alignment)
}

// WritePointer writes an 8-byte placeholder for a pointer field carrying
// identity, to be patched to its pointee's real body offset in Finish.
// identity == format.NullSentinel is written through unpatched, encoding
// a null pointer.
func (e *Encoder) WritePointer(identity uint64) {
	e.AlignTo(format.Alignment)
	e.pointers = append(e.pointers, uint32(e.buf.Len()))

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], identity)
	e.buf.MustWrite(b[:])
}

// RegisterPointee records that identity's pointee begins at the body's
// current write position. WritePointer calls made before or after this
// call are both patched correctly once Finish runs.
func (e *Encoder) RegisterPointee(identity uint64) {
	e.offsets[identity] = uint64(e.buf.Len())
}

// WritePointee writes the pointee for identity by invoking write, unless
// identity has already been written — by this call or an earlier one
// sharing the same identity, which lets structurally-shared values be
// written exactly once. If endIdentity is non-nil, it is registered as
// pointing just past the written data (used for dynamic array end/cap
// pointers).
func (e *Encoder) WritePointee(identity uint64, alignment uint8, endIdentity *uint64, write func(*Encoder) error) error {
	if _, ok := e.offsets[identity]; ok {
		return nil
	}

	e.AlignTo(format.Alignment)
	e.AlignTo(alignment)
	e.RegisterPointee(identity)

	if err := write(e); err != nil {
		return err
	}

	if endIdentity != nil {
		e.RegisterPointee(*endIdentity)
	}

	return nil
}

// WriteType writes an 8-byte type-id field referring to name, interning
// name into this encoder's type table in first-seen order.
func (e *Encoder) WriteType(name string) {
	e.AlignTo(format.Alignment)
	e.typeIDs = append(e.typeIDs, uint32(e.buf.Len()))

	idx := e.types.Intern(name)

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(idx))
	e.buf.MustWrite(b[:])
}

// WriteRuntimeResourceID writes an unaligned 8-byte ZRuntimeResourceID
// (high, low) pair and records its offset for the resource-ids segment.
func (e *Encoder) WriteRuntimeResourceID(high, low uint32) {
	e.runtimeResourceIDs = append(e.runtimeResourceIDs, uint32(e.buf.Len()))

	var b [8]byte
	binary.LittleEndian.PutUint32(b[0:4], high)
	binary.LittleEndian.PutUint32(b[4:8], low)
	e.buf.MustWrite(b[:])
}

// Finish patches every recorded pointer field to its pointee's resolved
// body offset, builds the appended segments, and returns the complete
// BIN1 image. The Encoder's buffer is returned to the pool and must not
// be used again after Finish returns.
func (e *Encoder) Finish() ([]byte, error) {
	e.AlignTo(format.Alignment)

	body := e.buf.Bytes()

	for _, offset := range e.pointers {
		if int(offset)+8 > len(body) {
			return nil, errs.ErrTruncatedImage
		}

		identity := binary.LittleEndian.Uint64(body[offset : offset+8])
		if identity == format.NullSentinel {
			continue
		}

		resolved, ok := e.offsets[identity]
		if !ok {
			return nil, errs.ErrUnresolvedPointer
		}

		binary.LittleEndian.PutUint64(body[offset:offset+8], resolved)
	}

	var segments []section.Segment
	if len(e.pointers) > 0 {
		segments = append(segments, section.Segment{
			Kind:    format.KindRebasedPointers,
			Payload: section.EncodeOffsetList(e.pointers),
		})
	}

	if len(e.typeIDs) > 0 {
		segments = append(segments, section.Segment{
			Kind:    format.KindTypeIDs,
			Payload: section.EncodeTypeIDsSegment(e.typeIDs, e.types.Names()),
		})
	}

	if len(e.runtimeResourceIDs) > 0 {
		segments = append(segments, section.Segment{
			Kind:    format.KindResourceIDs,
			Payload: section.EncodeOffsetList(e.runtimeResourceIDs),
		})
	}

	header := section.Header{SegmentCount: uint8(len(segments)), BodySize: uint32(len(body))}

	image := make([]byte, 0, format.HeaderSize+len(body)+64*len(segments))
	image = append(image, header.Bytes()...)
	image = append(image, body...)

	for _, seg := range segments {
		image = section.AppendSegment(image, seg.Kind, seg.Payload)
	}

	pool.PutEncoderBuffer(e.buf)
	e.buf = nil

	return image, nil
}
