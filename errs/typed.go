package errs

import "fmt"

// TypeMismatchError reports a variant decoded as a type other than the one
// the caller expected.
type TypeMismatchError struct {
	Expected string
	Found    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("bin1: expected type %q but found %q", e.Expected, e.Found)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// InvalidEnumValueError reports an integer outside an enum's declared
// discriminant set.
type InvalidEnumValueError struct {
	EnumName string
	Value    int64
}

func (e *InvalidEnumValueError) Error() string {
	if e.EnumName == "" {
		return fmt.Sprintf("bin1: invalid enum value %d", e.Value)
	}

	return fmt.Sprintf("bin1: invalid value %d for enum %s", e.Value, e.EnumName)
}

func (e *InvalidEnumValueError) Unwrap() error {
	return ErrInvalidEnumValue
}

// NoSuchTypeIDError reports a type-table index with no matching name.
type NoSuchTypeIDError struct {
	Index uint64
}

func (e *NoSuchTypeIDError) Error() string {
	return fmt.Sprintf("bin1: no such type ID with index %d", e.Index)
}

func (e *NoSuchTypeIDError) Unwrap() error {
	return ErrNoSuchTypeID
}

// UnknownTypeError reports a textual type id with no registered
// deserializer.
type UnknownTypeError struct {
	TypeID string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("bin1: unknown type %q", e.TypeID)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// PositionError wraps an underlying decode error with the byte offset the
// decoder was at when it failed.
type PositionError struct {
	Offset int64
	Err    error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("bin1: at offset %d: %s", e.Offset, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
