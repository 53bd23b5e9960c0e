package codec

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/hitman-tools/bin1/errs"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/layout"
	"github.com/hitman-tools/bin1/section"
)

// Decoder reads back a complete BIN1 image. Its cursor is an absolute
// offset into the whole image (header, body, and segments together), so
// a resolved pointer's body offset plus format.PointerBias lands directly
// on the byte it refers to.
type Decoder struct {
	data []byte
	pos  uint64

	dataStart uint64
	typeNames map[uint32]string

	parsedStrings  map[uint64]string
	parsedPointers map[uint64]any

	Opts DecodeOptions
}

// NewDecoder parses data's header and type-ids segment (if present) and
// positions the cursor at the start of the body, ready to read the root
// value.
func NewDecoder(data []byte, opts ...DecodeOption) (*Decoder, error) {
	o, err := newDecodeOptions(opts)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		data:           data,
		parsedStrings:  make(map[uint64]string),
		parsedPointers: make(map[uint64]any),
		Opts:           o,
	}

	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Decoder) init() error {
	header, err := section.ParseHeader(d.data)
	if err != nil {
		return err
	}

	dataStart := uint64(format.HeaderSize)
	segmentsStart := dataStart + uint64(header.BodySize)

	if segmentsStart > uint64(len(d.data)) {
		return errs.ErrTruncatedImage
	}

	segments, err := section.ParseSegments(d.data[segmentsStart:], header.SegmentCount)
	if err != nil {
		return err
	}

	for _, seg := range segments {
		if seg.Kind != format.KindTypeIDs {
			continue
		}

		_, names, err := section.DecodeTypeIDsSegment(seg.Payload)
		if err != nil {
			return err
		}

		d.typeNames = names

		break
	}

	d.dataStart = dataStart
	d.pos = dataStart

	return nil
}

// Position returns the decoder's current absolute cursor offset.
func (d *Decoder) Position() uint64 {
	return d.pos
}

// SeekFromStart moves the cursor to an absolute offset into the image.
func (d *Decoder) SeekFromStart(offset uint64) {
	d.pos = offset
}

// Skip advances the cursor by n bytes without reading them.
func (d *Decoder) Skip(n int) error {
	return d.skip(n)
}

// AlignTo advances the cursor to the next multiple of alignment.
func (d *Decoder) AlignTo(alignment uint8) error {
	pad := layout.PadTo(int(d.pos), alignment)
	return d.skip(pad)
}

// fail wraps err with the cursor offset the decoder was at when it
// failed, so a caller-visible error message always pinpoints where in
// the image decoding went wrong.
func (d *Decoder) fail(err error) error {
	return &errs.PositionError{Offset: int64(d.pos), Err: err}
}

func (d *Decoder) skip(n int) error {
	if uint64(n) > uint64(len(d.data))-d.pos {
		return d.fail(errs.ErrTruncatedImage)
	}

	d.pos += uint64(n)

	return nil
}

func (d *Decoder) take(n int) ([]byte, error) {
	if d.pos+uint64(n) > uint64(len(d.data)) {
		return nil, d.fail(errs.ErrTruncatedImage)
	}

	b := d.data[d.pos : d.pos+uint64(n)]
	d.pos += uint64(n)

	return b, nil
}

// ReadU8 reads one unsigned byte.
func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadU16 reads one little-endian uint16.
func (d *Decoder) ReadU16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads one little-endian uint32.
func (d *Decoder) ReadU32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads one little-endian uint64.
func (d *Decoder) ReadU64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

// ReadI8 reads one signed byte.
func (d *Decoder) ReadI8() (int8, error) {
	v, err := d.ReadU8()
	return int8(v), err
}

// ReadI16 reads one little-endian int16.
func (d *Decoder) ReadI16() (int16, error) {
	v, err := d.ReadU16()
	return int16(v), err
}

// ReadI32 reads one little-endian int32.
func (d *Decoder) ReadI32() (int32, error) {
	v, err := d.ReadU32()
	return int32(v), err
}

// ReadI64 reads one little-endian int64.
func (d *Decoder) ReadI64() (int64, error) {
	v, err := d.ReadU64()
	return int64(v), err
}

// ReadF32 reads one little-endian IEEE-754 float32.
func (d *Decoder) ReadF32() (float32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadF64 reads one little-endian IEEE-754 float64.
func (d *Decoder) ReadF64() (float64, error) {
	v, err := d.ReadU64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// ReadType reads an 8-byte type-id field and resolves it against the
// image's type-ids segment.
func (d *Decoder) ReadType() (string, error) {
	if err := d.AlignTo(format.Alignment); err != nil {
		return "", err
	}

	id, err := d.ReadU64()
	if err != nil {
		return "", err
	}

	name, ok := d.typeNames[uint32(id)]
	if !ok {
		return "", d.fail(&errs.NoSuchTypeIDError{Index: id})
	}

	return name, nil
}

// ReadZString reads a length-prefixed string field: a u32 length (with
// the external-string flag bit masked off), then an 8-byte pointer to the
// UTF-8 bytes. Identical pointers decode to the same cached string.
func (d *Decoder) ReadZString() (string, error) {
	if err := d.AlignTo(format.Alignment); err != nil {
		return "", err
	}

	rawLen, err := d.ReadU32()
	if err != nil {
		return "", err
	}

	length := rawLen &^ uint32(format.StringExternalFlag)

	if err := d.AlignTo(format.Alignment); err != nil {
		return "", err
	}

	ptr, err := d.ReadU64()
	if err != nil {
		return "", err
	}

	if s, ok := d.parsedStrings[ptr]; ok {
		return s, nil
	}

	start := ptr + format.PointerBias
	if start+uint64(length) > uint64(len(d.data)) {
		return "", d.fail(errs.ErrStringTooLarge)
	}

	raw := d.data[start : start+uint64(length)]
	if !utf8.Valid(raw) {
		return "", d.fail(errs.ErrInvalidUTF8)
	}

	s := string(raw)
	d.parsedStrings[ptr] = s

	return s, nil
}

// ReadPointerValue aligns to 8 and reads a raw 8-byte pointer field
// without following it, so a caller can branch on whether it is
// format.NullSentinel before deciding whether to resolve it.
func (d *Decoder) ReadPointerValue() (uint64, error) {
	if err := d.AlignTo(format.Alignment); err != nil {
		return 0, err
	}

	return d.ReadU64()
}

// ResolvePointer follows a raw pointer value already read by
// ReadPointerValue: unless ptr has already been resolved by an earlier
// call sharing the same raw value, it seeks to the pointee and decodes it
// with parse before restoring the cursor. The decoded value is cached by
// its raw pointer so that structurally-shared pointees decode to the
// identical value exactly once.
func ResolvePointer[T any](d *Decoder, ptr uint64, parse func(*Decoder) (T, error)) (T, error) {
	var zero T

	if cached, ok := d.parsedPointers[ptr]; ok {
		return cached.(T), nil
	}

	saved := d.pos
	d.pos = ptr + format.PointerBias

	result, err := parse(d)
	d.pos = saved

	if err != nil {
		return zero, err
	}

	d.parsedPointers[ptr] = result

	return result, nil
}

// ReadPointer reads an 8-byte pointer field and resolves it via
// ResolvePointer. Use ReadPointerValue+ResolvePointer directly instead
// when the caller needs to special-case a null pointer value.
func ReadPointer[T any](d *Decoder, parse func(*Decoder) (T, error)) (T, error) {
	var zero T

	ptr, err := d.ReadPointerValue()
	if err != nil {
		return zero, err
	}

	return ResolvePointer(d, ptr, parse)
}
