package section

import (
	"encoding/binary"

	"github.com/hitman-tools/bin1/errs"
	"github.com/hitman-tools/bin1/layout"
)

// typeIDSentinel marks the field that, in the source format, doubled as a
// hash slot and is always written as all-ones. BIN1 keeps the field only
// for byte-for-byte framing compatibility with the type-ids segment shape;
// nothing reads it back.
const typeIDSentinel = 0xFFFFFFFF

// TypeTable interns type names in first-seen order, assigning each a
// stable uint32 index. The encoder writes that index inline in the body
// wherever a value carries a type id; the index-to-name mapping is
// recovered at decode time from the type-ids segment.
type TypeTable struct {
	names []string
	index map[string]uint32
}

// NewTypeTable returns an empty type table.
func NewTypeTable() *TypeTable {
	return &TypeTable{index: make(map[string]uint32)}
}

// Intern returns the index assigned to name, minting a new one in
// first-seen order if this is the first time name has been interned.
func (t *TypeTable) Intern(name string) uint32 {
	if idx, ok := t.index[name]; ok {
		return idx
	}

	idx := uint32(len(t.names))
	t.names = append(t.names, name)
	t.index[name] = idx

	return idx
}

// Names returns the interned names in index order.
func (t *TypeTable) Names() []string {
	return t.names
}

// Len reports how many distinct type names have been interned.
func (t *TypeTable) Len() int {
	return len(t.names)
}

// EncodeTypeIDsSegment builds the payload of a KindTypeIDs segment: the
// offset list of every body position holding a type-id index, followed by
// the index-to-name table itself. Each table entry is
// (index u32, sentinel u32, name-length-including-null u32, name bytes,
// terminating NUL), and the start of each entry is realigned to 4 bytes
// relative to the start of the table, mirroring the source serializer's
// finalise step.
func EncodeTypeIDsSegment(fixupOffsets []uint32, names []string) []byte {
	payload := EncodeOffsetList(fixupOffsets)

	table := make([]byte, 4)
	binary.LittleEndian.PutUint32(table[0:4], uint32(len(names)))

	for i, name := range names {
		if pad := layout.PadTo(len(table), 4); pad > 0 {
			table = append(table, make([]byte, pad)...)
		}

		var entry [12]byte
		binary.LittleEndian.PutUint32(entry[0:4], uint32(i))
		binary.LittleEndian.PutUint32(entry[4:8], typeIDSentinel)
		binary.LittleEndian.PutUint32(entry[8:12], uint32(len(name)+1))
		table = append(table, entry[:]...)
		table = append(table, name...)
		table = append(table, 0)
	}

	return append(payload, table...)
}

// DecodeTypeIDsSegment parses a KindTypeIDs segment payload back into its
// fixup offset list and its index-to-name table.
func DecodeTypeIDsSegment(payload []byte) (fixupOffsets []uint32, names map[uint32]string, err error) {
	if len(payload) < 4 {
		return nil, nil, errs.ErrTruncatedImage
	}

	offsetCount := binary.LittleEndian.Uint32(payload[0:4])
	tableStart := 4 + 4*int(offsetCount)

	if len(payload) < tableStart+4 {
		return nil, nil, errs.ErrTruncatedImage
	}

	fixupOffsets, err = DecodeOffsetList(payload[:tableStart])
	if err != nil {
		return nil, nil, err
	}

	nameCount := binary.LittleEndian.Uint32(payload[tableStart : tableStart+4])
	pos := tableStart + 4
	names = make(map[uint32]string, nameCount)

	for i := uint32(0); i < nameCount; i++ {
		if pad := layout.PadTo(pos-tableStart, 4); pad > 0 {
			pos += pad
		}

		if pos+12 > len(payload) {
			return nil, nil, errs.ErrTruncatedImage
		}

		idx := binary.LittleEndian.Uint32(payload[pos : pos+4])
		nameLen := binary.LittleEndian.Uint32(payload[pos+8 : pos+12])
		pos += 12

		if nameLen == 0 || pos+int(nameLen) > len(payload) {
			return nil, nil, errs.ErrTruncatedImage
		}

		names[idx] = string(payload[pos : pos+int(nameLen)-1])
		pos += int(nameLen)
	}

	return fixupOffsets, names, nil
}
