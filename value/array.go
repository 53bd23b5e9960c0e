package value

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/internal/ident"
)

// WriteFixedArray writes a TFixedArray: elements back-to-back, each
// padded to its own alignment both before and after, with no stored
// length (the schema fixes the element count).
func WriteFixedArray[T Value](e *codec.Encoder, elems []T) error {
	for _, el := range elems {
		align := el.Alignment()
		e.AlignTo(align)

		if err := el.WriteTo(e); err != nil {
			return err
		}

		e.AlignTo(align)
	}

	return nil
}

// ReadFixedArray reads n elements of a TFixedArray, aligning to
// elemAlignment both before and after each one.
func ReadFixedArray[T any](d *codec.Decoder, n int, elemAlignment uint8, read func(*codec.Decoder) (T, error)) ([]T, error) {
	result := make([]T, 0, n)

	for i := 0; i < n; i++ {
		if err := d.AlignTo(elemAlignment); err != nil {
			return nil, err
		}

		v, err := read(d)
		if err != nil {
			return nil, err
		}

		if err := d.AlignTo(elemAlignment); err != nil {
			return nil, err
		}

		result = append(result, v)
	}

	return result, nil
}

// DynArray is an owning, growable TArray<T>: three pointer-sized fields
// (begin, end, capacity-end), with capacity-end always equal to end since
// this codec never encodes spare capacity.
type DynArray[T Value] struct {
	Identity uint64
	Elems    []T
}

// Alignment is always 8.
func (DynArray[T]) Alignment() uint8 { return format.Alignment }

// WriteTo writes the three pointer fields and, for a non-empty array, the
// backing elements as a TFixedArray pointee.
func (a DynArray[T]) WriteTo(e *codec.Encoder) error {
	if len(a.Elems) == 0 {
		e.WritePointer(format.NullSentinel)
		e.WritePointer(format.NullSentinel)
		e.WritePointer(format.NullSentinel)

		return nil
	}

	begin, end := ident.ArrayIdentities(a.Identity)
	e.WritePointer(begin)
	e.WritePointer(end)
	e.WritePointer(end)

	elemAlign := a.Elems[0].Alignment()

	return e.WritePointee(begin, elemAlign, &end, func(enc *codec.Encoder) error {
		return WriteFixedArray(enc, a.Elems)
	})
}

// ReadDynArray reads a TArray<T> field. elemSize is T's layout.Sized
// size, used to recover the element count from the begin/end pointers.
func ReadDynArray[T any](d *codec.Decoder, elemSize uint32, elemAlignment uint8, read func(*codec.Decoder) (T, error)) ([]T, error) {
	if err := d.AlignTo(format.Alignment); err != nil {
		return nil, err
	}

	start, err := d.ReadU64()
	if err != nil {
		return nil, err
	}

	end, err := d.ReadU64()
	if err != nil {
		return nil, err
	}

	if start == format.NullSentinel || end == format.NullSentinel {
		if err := d.Skip(8); err != nil {
			return nil, err
		}

		return nil, nil
	}

	length := (end - start) / uint64(elemSize)
	pos := d.Position()

	d.SeekFromStart(start + format.PointerBias)

	result := make([]T, 0, length)

	for i := uint64(0); i < length; i++ {
		if err := d.AlignTo(elemAlignment); err != nil {
			return nil, err
		}

		v, err := read(d)
		if err != nil {
			return nil, err
		}

		result = append(result, v)
	}

	d.SeekFromStart(pos + 8)

	return result, nil
}

// ArrayRef is a non-owning, two-pointer array view (TArrayRef): a
// begin/end pair with no capacity-end slot, used where the schema
// borrows element storage rather than owning it.
type ArrayRef[T Value] struct {
	Identity uint64
	Elems    []T
}

// Alignment is always 8.
func (ArrayRef[T]) Alignment() uint8 { return format.Alignment }

// WriteTo writes the two pointer fields and, for a non-empty view, the
// backing elements as a TFixedArray pointee.
func (a ArrayRef[T]) WriteTo(e *codec.Encoder) error {
	if len(a.Elems) == 0 {
		e.WritePointer(format.NullSentinel)
		e.WritePointer(format.NullSentinel)

		return nil
	}

	begin, end := ident.ArrayIdentities(a.Identity)
	e.WritePointer(begin)
	e.WritePointer(end)

	elemAlign := a.Elems[0].Alignment()

	return e.WritePointee(begin, elemAlign, &end, func(enc *codec.Encoder) error {
		return WriteFixedArray(enc, a.Elems)
	})
}

// ReadArrayRef reads a TArrayRef field, the two-pointer counterpart of
// ReadDynArray.
func ReadArrayRef[T any](d *codec.Decoder, elemSize uint32, elemAlignment uint8, read func(*codec.Decoder) (T, error)) ([]T, error) {
	if err := d.AlignTo(format.Alignment); err != nil {
		return nil, err
	}

	start, err := d.ReadU64()
	if err != nil {
		return nil, err
	}

	end, err := d.ReadU64()
	if err != nil {
		return nil, err
	}

	if start == format.NullSentinel || end == format.NullSentinel {
		return nil, nil
	}

	length := (end - start) / uint64(elemSize)
	pos := d.Position()

	d.SeekFromStart(start + format.PointerBias)

	result := make([]T, 0, length)

	for i := uint64(0); i < length; i++ {
		if err := d.AlignTo(elemAlignment); err != nil {
			return nil, err
		}

		v, err := read(d)
		if err != nil {
			return nil, err
		}

		result = append(result, v)
	}

	d.SeekFromStart(pos)

	return result, nil
}
