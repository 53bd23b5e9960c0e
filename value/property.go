package value

import (
	"github.com/hitman-tools/bin1/codec"
)

// PropertyID is a CRC32-backed property name hash (nPropertyID): wire
// identical to a plain uint32, but resolvable back to the schema's
// textual property name through a PropertyNameResolver.
type PropertyID uint32

// Alignment is always 4.
func (PropertyID) Alignment() uint8 { return AlignUint32 }

// Size is always 4.
func (PropertyID) Size() uint32 { return 4 }

// WriteTo writes the raw CRC32 value.
func (p PropertyID) WriteTo(e *codec.Encoder) error {
	WriteU32(e, uint32(p))
	return nil
}

// ReadPropertyID decodes a PropertyID field.
func ReadPropertyID(d *codec.Decoder) (PropertyID, error) {
	v, err := d.ReadU32()
	return PropertyID(v), err
}

// PropertyNameResolver looks up the known schema name for a property id,
// the Go counterpart of the bundled name/CRC32 table original_source/
// loads once at process start. Name returns ok=false for a hash with no
// known name, in which case callers fall back to formatting the raw
// numeric id.
type PropertyNameResolver interface {
	Name(id PropertyID) (name string, ok bool)
	ID(name string) (id PropertyID, ok bool)
}

// StaticPropertyNames is a PropertyNameResolver backed by a fixed,
// precomputed bidirectional table — the Go counterpart of the bundled
// properties.txt/properties-crc32.txt pair loaded once at process start.
type StaticPropertyNames struct {
	byID   map[PropertyID]string
	byName map[string]PropertyID
}

// NewStaticPropertyNames builds a resolver from parallel name/id slices.
// Callers own building this table however they like (embedding bundled
// text files, generated Go data, a JSON sidecar); this codec does not
// bundle the name table itself.
func NewStaticPropertyNames(names []string, ids []PropertyID) *StaticPropertyNames {
	r := &StaticPropertyNames{
		byID:   make(map[PropertyID]string, len(names)),
		byName: make(map[string]PropertyID, len(names)),
	}

	for i, name := range names {
		if i >= len(ids) {
			break
		}

		r.byID[ids[i]] = name
		r.byName[name] = ids[i]
	}

	return r
}

// Name returns the known name for id, if any.
func (r *StaticPropertyNames) Name(id PropertyID) (string, bool) {
	name, ok := r.byID[id]
	return name, ok
}

// ID returns the known PropertyID for name, if any.
func (r *StaticPropertyNames) ID(name string) (PropertyID, bool) {
	id, ok := r.byName[name]
	return id, ok
}
