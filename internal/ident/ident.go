// Package ident mints and derives the 64-bit pointer-identity tokens the
// encoder uses to label a pointee before its body offset is known.
//
// An identity is an opaque token: two writes with the same identity
// within one encode write the pointee exactly once (structural sharing).
// The original C++-derived format used to use the in-memory object
// address as identity; Go values have no comparable stable address across
// an encode, so this package offers two strategies instead:
//
//   - Fresh minting (Owned pointers, array elements with no natural
//     content key): a random 64-bit token, analogous to the source's use
//     of the owning pointer's allocation address as an opaque label.
//   - Content addressing (interned strings): an xxHash64 of the payload
//     bytes, so two encodes of equal string content collide into one
//     shared pointee automatically.
package ident

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Tag bits used to derive the TArray identities (begin, and end, which
// also serves as capacity-end) from one base identity without colliding with identities
// minted for other pointees, mirroring the 0xABCD.../0xCAFE... high-nibble
// tagging the source format's array serializer uses to avoid colliding
// fake pointers with real allocation addresses.
const (
	arrayBeginTag = uint64(0xABCD_0000_0000_0000)
	arrayEndTag   = uint64(0xCAFE_0000_0000_0000)
)

// New mints a fresh, statistically unique 64-bit identity token.
func New() uint64 {
	var buf [8]byte
	// crypto/rand.Read on a fixed-size buffer only fails if the OS CSPRNG
	// is unavailable, which this codec has no way to recover from.
	if _, err := rand.Read(buf[:]); err != nil {
		panic("bin1/internal/ident: system randomness unavailable: " + err.Error())
	}

	return binary.LittleEndian.Uint64(buf[:])
}

// FromBytes derives a content-addressed identity from payload bytes, used
// for interned-string deduplication.
func FromBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FromString derives a content-addressed identity from a string, without
// an intermediate []byte allocation.
func FromString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// ArrayIdentities derives the begin and end/capacity-end identities for a
// non-empty dynamic array from one base token, tagging each into a
// disjoint high-order range so they cannot collide with identities minted
// for unrelated pointees in the same encode.
func ArrayIdentities(base uint64) (begin, end uint64) {
	masked := base &^ (arrayBeginTag | arrayEndTag)
	begin = masked | arrayBeginTag
	end = begin | arrayEndTag

	return begin, end
}
