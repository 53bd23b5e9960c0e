// Package variant implements the ZVariant open-type subsystem (spec.md
// §4.4): a registry mapping a schema's type-id strings to decode
// functions, generalizing the teacher's closed EncodingType/
// CompressionType factory switches to an open, code-generated set of
// types.
package variant

import (
	"sync"

	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/format"
	"github.com/hitman-tools/bin1/internal/ident"
	"github.com/hitman-tools/bin1/value"
)

// Variant is implemented by every type a ZVariant field may hold: it
// knows its own wire layout (value.Value) and reports the type-id string
// a decoder uses to find its decoder in the Registry.
type Variant interface {
	value.Value
	TypeID() string
}

type decodeFunc func(d *codec.Decoder) (Variant, error)

// Registry maps a schema's type-id strings to the decode function for
// that type. A process normally builds one Registry at startup via
// RegisterType calls for every schema type that can appear behind a
// ZVariant field, mirroring the source's inventory-collected
// DeserializeVariant set.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]decodeFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]decodeFunc)}
}

// Register adds a single type-id -> decode mapping. Most callers should
// use RegisterType instead, which also registers the type's array forms.
func Register(r *Registry, typeID string, decode func(*codec.Decoder) (Variant, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.decoders[typeID] = decode
}

func (r *Registry) lookup(typeID string) (decodeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.decoders[typeID]

	return fn, ok
}

// RegisterType registers T under typeID, plus its TArray<T> and
// TArray<TArray<T>> forms, so a ZVariant field declared as an array of a
// registered type decodes without a separate registration call — the
// registration-completeness invariant spec.md §8 requires. elemSize is
// T's layout.Sized size, needed to walk a TArray<T>'s backing elements.
func RegisterType[T Variant](r *Registry, typeID string, elemSize uint32, decode func(*codec.Decoder) (T, error)) {
	var zero T
	elemAlign := zero.Alignment()

	Register(r, typeID, func(d *codec.Decoder) (Variant, error) {
		return decode(d)
	})

	arrayTypeID := "TArray<" + typeID + ">"
	Register(r, arrayTypeID, func(d *codec.Decoder) (Variant, error) {
		elems, err := value.ReadDynArray(d, elemSize, elemAlign, decode)
		if err != nil {
			return nil, err
		}

		return arrayVariant[T]{typeID: arrayTypeID, elems: elems}, nil
	})

	nestedTypeID := "TArray<TArray<" + typeID + ">>"
	Register(r, nestedTypeID, func(d *codec.Decoder) (Variant, error) {
		const dynArrayRecordSize = 24 // 3 pointer-sized fields

		elems, err := value.ReadDynArray(d, dynArrayRecordSize, format.Alignment, func(d *codec.Decoder) ([]T, error) {
			return value.ReadDynArray(d, elemSize, elemAlign, decode)
		})
		if err != nil {
			return nil, err
		}

		return nestedArrayVariant[T]{typeID: nestedTypeID, elems: elems}, nil
	})
}

// arrayVariant adapts a decoded TArray<T> so it can itself be registered
// and addressed as a Variant (e.g. when a ZVariant field's declared type
// is an array of a registered element type).
type arrayVariant[T Variant] struct {
	typeID string
	elems  []T
}

func (a arrayVariant[T]) TypeID() string { return a.typeID }

// Alignment is always 8, the wire shape of any TArray<T>.
func (arrayVariant[T]) Alignment() uint8 { return format.Alignment }

func (a arrayVariant[T]) WriteTo(e *codec.Encoder) error {
	values := make([]value.Value, len(a.elems))
	for i, el := range a.elems {
		values[i] = el
	}

	return writeDynArray(e, values)
}

// Elems returns the decoded element slice.
func (a arrayVariant[T]) Elems() []T { return a.elems }

type nestedArrayVariant[T Variant] struct {
	typeID string
	elems  [][]T
}

func (a nestedArrayVariant[T]) TypeID() string { return a.typeID }

// Alignment is always 8, the wire shape of any TArray<TArray<T>>.
func (nestedArrayVariant[T]) Alignment() uint8 { return format.Alignment }

func (a nestedArrayVariant[T]) WriteTo(e *codec.Encoder) error {
	outer := make([]value.Value, len(a.elems))

	for i, inner := range a.elems {
		innerValues := make([]value.Value, len(inner))
		for j, el := range inner {
			innerValues[j] = el
		}

		outer[i] = dynArrayValue{elems: innerValues}
	}

	return writeDynArray(e, outer)
}

// Elems returns the decoded nested element slices.
func (a nestedArrayVariant[T]) Elems() [][]T { return a.elems }

// dynArrayValue and writeDynArray let arrayVariant/nestedArrayVariant
// reuse value.DynArray's write path without re-exposing a generic
// parameter these wrapper types don't otherwise need.
type dynArrayValue struct {
	elems []value.Value
}

func (dynArrayValue) Alignment() uint8 { return format.Alignment }

func (d dynArrayValue) WriteTo(e *codec.Encoder) error {
	return writeDynArray(e, d.elems)
}

func writeDynArray(e *codec.Encoder, elems []value.Value) error {
	return value.DynArray[value.Value]{Identity: ident.New(), Elems: elems}.WriteTo(e)
}
