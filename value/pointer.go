package value

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/layout"
)

// Value is implemented by every composite BIN1 value type: it knows its
// own alignment and can write itself onto an Encoder.
type Value interface {
	layout.Aligned
	WriteTo(e *codec.Encoder) error
}

// Ptr is an owning pointer (Owned<T>/Arc<T>): it writes a placeholder
// then, the first time any Ptr/OptPtr sharing its Identity is written,
// the pointee itself.
type Ptr[T Value] struct {
	Identity uint64
	Elem     T
}

// Alignment is always 8 for any pointer-shaped field.
func (Ptr[T]) Alignment() uint8 { return format.Alignment }

// WriteTo writes the pointer placeholder and, unless already written by
// a prior Ptr/OptPtr sharing the same Identity, the pointee.
func (p Ptr[T]) WriteTo(e *codec.Encoder) error {
	e.WritePointer(p.Identity)

	return e.WritePointee(p.Identity, p.Elem.Alignment(), nil, func(enc *codec.Encoder) error {
		return p.Elem.WriteTo(enc)
	})
}

// ReadPtr reads a Ptr field, decoding its pointee with parse.
func ReadPtr[T any](d *codec.Decoder, parse func(*codec.Decoder) (T, error)) (T, error) {
	return codec.ReadPointer(d, parse)
}

// OptPtr is an optional owning pointer (Option<Arc<T>>): an absent value
// writes the all-ones null sentinel instead of a real pointer.
type OptPtr[T Value] struct {
	Identity uint64
	Elem     T
	Present  bool
}

// Alignment is always 8.
func (OptPtr[T]) Alignment() uint8 { return format.Alignment }

// WriteTo writes either the resolved pointer (Present) or the null
// sentinel.
func (p OptPtr[T]) WriteTo(e *codec.Encoder) error {
	if !p.Present {
		e.WritePointer(format.NullSentinel)
		return nil
	}

	return Ptr[T]{Identity: p.Identity, Elem: p.Elem}.WriteTo(e)
}

// ReadOptPtr reads an OptPtr field, returning ok=false for a null
// pointer without invoking parse.
func ReadOptPtr[T any](d *codec.Decoder, parse func(*codec.Decoder) (T, error)) (value T, ok bool, err error) {
	ptr, err := d.ReadPointerValue()
	if err != nil {
		return value, false, err
	}

	if ptr == format.NullSentinel {
		return value, false, nil
	}

	value, err = codec.ResolvePointer(d, ptr, parse)

	return value, err == nil, err
}

// OptPtrZeroNull is the alternate optional-pointer convention some schema
// fields use: an absent value writes an all-zero 8-byte slot instead of
// the all-ones sentinel.
type OptPtrZeroNull[T Value] struct {
	Identity uint64
	Elem     T
	Present  bool
}

// Alignment is always 8.
func (OptPtrZeroNull[T]) Alignment() uint8 { return format.Alignment }

// WriteTo writes either the resolved pointer (Present) or an all-zero
// slot.
func (p OptPtrZeroNull[T]) WriteTo(e *codec.Encoder) error {
	if !p.Present {
		e.WriteAligned(make([]byte, 8), format.Alignment)
		return nil
	}

	return Ptr[T]{Identity: p.Identity, Elem: p.Elem}.WriteTo(e)
}

// ReadOptPtrZeroNull reads an OptPtrZeroNull field, returning ok=false
// for an all-zero slot without invoking parse.
func ReadOptPtrZeroNull[T any](d *codec.Decoder, parse func(*codec.Decoder) (T, error)) (value T, ok bool, err error) {
	ptr, err := d.ReadPointerValue()
	if err != nil {
		return value, false, err
	}

	if ptr == 0 {
		return value, false, nil
	}

	value, err = codec.ResolvePointer(d, ptr, parse)

	return value, err == nil, err
}

// WeakPtr has the identical wire shape to Ptr; ownership is a Go-side
// concern the codec does not need to express, so it is a thin alias
// preserved only for call-site clarity when porting schema fields that
// were Weak<T> in the source.
type WeakPtr[T Value] = Ptr[T]
