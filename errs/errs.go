// Package errs defines the sentinel errors returned by the BIN1 codec.
//
// Callers match these with errors.Is; richer error types that need extra
// fields (TypeMismatch, InvalidEnumValue) wrap one of these sentinels so a
// single errors.Is check still works across both forms.
package errs

import "errors"

var (
	// ErrInvalidMagic is returned when an image does not start with "BIN1".
	ErrInvalidMagic = errors.New("bin1: not a BIN1 image")

	// ErrTruncatedImage is returned when the image ends before a read or
	// seek the decoder needs to perform.
	ErrTruncatedImage = errors.New("bin1: truncated image")

	// ErrMisalignedSegment names a segment whose declared payload size
	// does not leave the cursor where the next segment header should
	// start. section.ParseSegments does not check segment alignment and
	// does not return it.
	ErrMisalignedSegment = errors.New("bin1: misaligned segment")

	// ErrSegmentSizeMismatch names a segment whose declared payload
	// length does not match the bytes actually written. No function in
	// this module returns it; a segment running past the end of the
	// image is reported as ErrTruncatedImage.
	ErrSegmentSizeMismatch = errors.New("bin1: segment size mismatch")

	// ErrStringTooLarge is returned when a string's declared length runs
	// past the end of the image.
	ErrStringTooLarge = errors.New("bin1: string length exceeds image")

	// ErrInvalidUTF8 is returned when string bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("bin1: invalid utf-8 in string payload")

	// ErrNoSuchTypeID is returned when a body type-index does not appear
	// in the image's type-name table.
	ErrNoSuchTypeID = errors.New("bin1: no such type ID index")

	// ErrUnknownType is returned when a textual type id has no
	// registered deserializer.
	ErrUnknownType = errors.New("bin1: unknown variant type")

	// ErrTypeMismatch names a variant decoded as a type other than the
	// one requested. It is the sentinel TypeMismatchError unwraps to;
	// variant.ReadZVariant takes no expected type and returns neither.
	ErrTypeMismatch = errors.New("bin1: variant type mismatch")

	// ErrInvalidEnumValue is returned when a decoded integer is outside
	// a regular enum's declared discriminant set, and by the uninhabited
	// enum fallback when strict decoding is on.
	ErrInvalidEnumValue = errors.New("bin1: invalid enum discriminant")

	// ErrUnresolvedPointer is returned by Encoder.Finish when a pointer
	// fix-up's identity was never registered by a WritePointee call.
	ErrUnresolvedPointer = errors.New("bin1: unresolved pointer identity")

	// ErrInvalidAlignment names a layout that declares an alignment
	// outside {1,2,4,8}. The layout package does not validate alignments
	// and no function in this module returns it.
	ErrInvalidAlignment = errors.New("bin1: invalid alignment")

	// ErrTypeAlreadyRegistered names a textual type id registered twice.
	// The variant registry does not return it: a second Register call for
	// the same type id replaces the earlier decode function.
	ErrTypeAlreadyRegistered = errors.New("bin1: type already registered")

	// ErrEncoderFinished names the state of an Encoder whose Finish has
	// already consumed it. Encoder methods do not check for that state
	// and do not return this error.
	ErrEncoderFinished = errors.New("bin1: encoder already finished")
)
