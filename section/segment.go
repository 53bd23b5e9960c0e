package section

import (
	"encoding/binary"

	"github.com/hitman-tools/bin1/errs"
	"github.com/hitman-tools/bin1/format"
)

// Segment is one appended side table: a magic, and its payload bytes.
type Segment struct {
	Kind    format.SegmentKind
	Payload []byte
}

// segmentHeaderSize is the size, in bytes, of one segment's magic+size
// prefix.
const segmentHeaderSize = 8

// AppendSegment appends a framed segment (kind, size, payload) to buf.
func AppendSegment(buf []byte, kind format.SegmentKind, payload []byte) []byte {
	var hdr [segmentHeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(kind))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(payload)))
	buf = append(buf, hdr[:]...)
	buf = append(buf, payload...)

	return buf
}

// ParseSegments walks every segment in data (the bytes immediately
// following the header+body) and returns them in file order.
func ParseSegments(data []byte, count uint8) ([]Segment, error) {
	segments := make([]Segment, 0, count)
	pos := 0

	for i := 0; i < int(count); i++ {
		if pos+segmentHeaderSize > len(data) {
			return nil, errs.ErrTruncatedImage
		}

		kind := format.SegmentKind(binary.LittleEndian.Uint32(data[pos : pos+4]))
		size := binary.LittleEndian.Uint32(data[pos+4 : pos+8])
		pos += segmentHeaderSize

		if pos+int(size) > len(data) {
			return nil, errs.ErrTruncatedImage
		}

		segments = append(segments, Segment{Kind: kind, Payload: data[pos : pos+int(size)]})
		pos += int(size)
	}

	return segments, nil
}

// EncodeOffsetList builds the payload for a simple offset-list segment
// (rebased pointers, resource ids): a u32 count followed by each u32
// body offset, in the order given.
func EncodeOffsetList(offsets []uint32) []byte {
	buf := make([]byte, 4+4*len(offsets))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(offsets)))

	for i, off := range offsets {
		binary.LittleEndian.PutUint32(buf[4+4*i:8+4*i], off)
	}

	return buf
}

// DecodeOffsetList parses the payload produced by EncodeOffsetList.
func DecodeOffsetList(payload []byte) ([]uint32, error) {
	if len(payload) < 4 {
		return nil, errs.ErrTruncatedImage
	}

	count := binary.LittleEndian.Uint32(payload[0:4])
	if len(payload) < 4+4*int(count) {
		return nil, errs.ErrTruncatedImage
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(payload[4+4*i : 8+4*i])
	}

	return offsets, nil
}
