package value

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/layout"
)

// Field is one named member of a Record: an explicit value alongside the
// raw padding bytes original_source's derive macro would have inserted
// via a #[bin1(pad = N)] attribute (a ZVariant field padded to keep a
// following pointer aligned is the case that attribute exists for).
type Field struct {
	Name    string
	Value   Value
	PrePad  int
	PostPad int
}

// Record is an ordered set of named fields, Go's hand-written stand-in
// for the struct bodies original_source/'s derive macro generates: each
// field is written in order, at its own alignment, with PrePad/PostPad
// zero bytes inserted exactly as a #[bin1(pad = N)] attribute would.
type Record struct {
	Fields []Field
}

// Alignment is the max alignment across all fields (1 for an empty
// record).
func (r Record) Alignment() uint8 {
	align := uint8(1)
	for _, f := range r.Fields {
		align = layout.Max(align, f.Value.Alignment())
	}

	return align
}

// WriteTo writes every field in order: PrePad zero bytes, the field
// aligned to its own alignment, then PostPad zero bytes.
func (r Record) WriteTo(e *codec.Encoder) error {
	for _, f := range r.Fields {
		if f.PrePad > 0 {
			e.WriteUnaligned(make([]byte, f.PrePad))
		}

		e.AlignTo(f.Value.Alignment())

		if err := f.Value.WriteTo(e); err != nil {
			return err
		}

		if f.PostPad > 0 {
			e.WriteUnaligned(make([]byte, f.PostPad))
		}
	}

	e.AlignTo(r.Alignment())

	return nil
}

// FieldDescriptor describes one field's layout contract for RecordLayout,
// independent of any concrete field value — used by generated schema code
// to compute a type's Size() without constructing an instance.
type FieldDescriptor struct {
	Alignment uint8
	Size      uint32
	PrePad    int
	PostPad   int
}

// RecordLayout computes the overall (size, alignment) for an ordered list
// of field descriptors, matching how Record.WriteTo actually lays out
// bytes.
func RecordLayout(fields []FieldDescriptor) (size uint32, alignment uint8) {
	layoutFields := make([]layout.FieldLayout, len(fields))
	for i, f := range fields {
		layoutFields[i] = layout.FieldLayout{
			PrePad:  f.PrePad,
			Size:    f.Size,
			PostPad: f.PostPad,
			Align:   f.Alignment,
		}
	}

	return layout.RecordSize(layoutFields), layout.RecordAlignment(layoutFields)
}

// ReadField reads one record field's value given a concrete read
// function, handling PrePad/PostPad skip and the field's own alignment —
// the decode counterpart of Field/Record.WriteTo for generated schema
// code that doesn't go through the Record/Field types directly.
func ReadField[T any](d *codec.Decoder, alignment uint8, prePad, postPad int, read func(*codec.Decoder) (T, error)) (T, error) {
	var zero T

	if prePad > 0 {
		if err := d.Skip(prePad); err != nil {
			return zero, err
		}
	}

	if err := d.AlignTo(alignment); err != nil {
		return zero, err
	}

	v, err := read(d)
	if err != nil {
		return zero, err
	}

	if postPad > 0 {
		if err := d.Skip(postPad); err != nil {
			return zero, err
		}
	}

	return v, nil
}
