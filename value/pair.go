package value

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/layout"
)

// Pair is a two-field (T, U) tuple. Its alignment is max(T, U) — the
// resolved pair-alignment Open Question — and U's own alignment governs
// the gap between the two fields as well as the trailing pad, matching
// the read loop in original_source/src/de/impls.rs's (T, U) impl.
type Pair[T, U Value] struct {
	First  T
	Second U
}

// Alignment is max(First.Alignment(), Second.Alignment()).
func (p Pair[T, U]) Alignment() uint8 {
	return layout.Max(p.First.Alignment(), p.Second.Alignment())
}

// WriteTo writes First with no leading alignment (the caller is assumed
// to have already aligned to Pair's own alignment), then pads to
// Second's alignment, writes Second, and pads to Second's alignment
// again.
func (p Pair[T, U]) WriteTo(e *codec.Encoder) error {
	if err := p.First.WriteTo(e); err != nil {
		return err
	}

	e.AlignTo(p.Second.Alignment())

	if err := p.Second.WriteTo(e); err != nil {
		return err
	}

	e.AlignTo(p.Second.Alignment())

	return nil
}

// ReadPair decodes a (T, U) pair. uAlignment is U's layout alignment,
// used both for the gap between the two fields and the trailing pad,
// exactly mirroring the source's read loop.
func ReadPair[T, U any](d *codec.Decoder, uAlignment uint8, readT func(*codec.Decoder) (T, error), readU func(*codec.Decoder) (U, error)) (T, U, error) {
	var zeroT T

	var zeroU U

	first, err := readT(d)
	if err != nil {
		return zeroT, zeroU, err
	}

	if err := d.AlignTo(uAlignment); err != nil {
		return zeroT, zeroU, err
	}

	second, err := readU(d)
	if err != nil {
		return zeroT, zeroU, err
	}

	if err := d.AlignTo(uAlignment); err != nil {
		return zeroT, zeroU, err
	}

	return first, second, nil
}
