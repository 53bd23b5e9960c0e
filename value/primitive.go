// Package value implements the BIN1 value types a schema is built from:
// primitives, arrays, pointers, strings, pairs, records, enums, resource
// ids, and properties. Every type pairs a Go-idiomatic representation
// with the exact wire layout original_source/ describes.
package value

import (
	"encoding/binary"
	"math"

	"github.com/hitman-tools/bin1/codec"
)

// Alignment/size constants for the scalar kinds, exposed so Record and
// FixedArray field descriptors can reference them instead of repeating
// magic numbers. Every scalar's alignment equals its width; none carry
// internal padding (ser/impls.rs writes them with write_unaligned).
const (
	AlignUint8   uint8 = 1
	AlignUint16  uint8 = 2
	AlignUint32  uint8 = 4
	AlignUint64  uint8 = 8
	AlignFloat32       = AlignUint32
	AlignFloat64       = AlignUint64
	AlignBool    uint8 = 1
)

// WriteU8 writes one unsigned byte.
func WriteU8(e *codec.Encoder, v uint8) {
	e.WriteUnaligned([]byte{v})
}

// WriteU16 writes one little-endian uint16.
func WriteU16(e *codec.Encoder, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.WriteUnaligned(b[:])
}

// WriteU32 writes one little-endian uint32.
func WriteU32(e *codec.Encoder, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.WriteUnaligned(b[:])
}

// WriteU64 writes one little-endian uint64.
func WriteU64(e *codec.Encoder, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.WriteUnaligned(b[:])
}

// WriteI8 writes one signed byte.
func WriteI8(e *codec.Encoder, v int8) { WriteU8(e, uint8(v)) }

// WriteI16 writes one little-endian int16.
func WriteI16(e *codec.Encoder, v int16) { WriteU16(e, uint16(v)) }

// WriteI32 writes one little-endian int32.
func WriteI32(e *codec.Encoder, v int32) { WriteU32(e, uint32(v)) }

// WriteI64 writes one little-endian int64.
func WriteI64(e *codec.Encoder, v int64) { WriteU64(e, uint64(v)) }

// WriteF32 writes one little-endian IEEE-754 float32.
func WriteF32(e *codec.Encoder, v float32) { WriteU32(e, math.Float32bits(v)) }

// WriteF64 writes one little-endian IEEE-754 float64.
func WriteF64(e *codec.Encoder, v float64) { WriteU64(e, math.Float64bits(v)) }

// WriteBool writes one byte, 1 for true and 0 for false.
func WriteBool(e *codec.Encoder, v bool) {
	if v {
		WriteU8(e, 1)
		return
	}

	WriteU8(e, 0)
}

// ReadBool reads one byte as a boolean (any nonzero value is true).
func ReadBool(d *codec.Decoder) (bool, error) {
	v, err := d.ReadU8()
	return v != 0, err
}
