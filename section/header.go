// Package section implements the BIN1 image's outer framing: the fixed
// header, and the three appended segment kinds (rebased pointers, type
// ids, resource ids).
package section

import (
	"encoding/binary"

	"github.com/hitman-tools/bin1/errs"
	"github.com/hitman-tools/bin1/format"
)

// Header is the fixed 16-byte preamble at the start of every BIN1 image.
type Header struct {
	// SegmentCount is the number of segments appended after the body.
	SegmentCount uint8
	// BodySize is the length, in bytes, of the body that follows the
	// header. Stored big-endian in the image — the one exception to the
	// format's otherwise little-endian payload.
	BodySize uint32
}

// Bytes serializes the header into a format.HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, format.HeaderSize)
	copy(b[0:4], format.Magic)
	b[4] = 0
	b[5] = format.Alignment
	b[6] = h.SegmentCount
	b[7] = 0
	binary.BigEndian.PutUint32(b[8:12], h.BodySize)
	// bytes 12-15 reserved, left zero

	return b
}

// ParseHeader reads and validates a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < format.HeaderSize {
		return Header{}, errs.ErrTruncatedImage
	}

	if string(data[0:4]) != format.Magic {
		return Header{}, errs.ErrInvalidMagic
	}

	return Header{
		SegmentCount: data[6],
		BodySize:     binary.BigEndian.Uint32(data[8:12]),
	}, nil
}
