// Package bin1 provides a relocatable, pointer-preserving binary codec
// for game resource files: a fixed 16-byte header, a body holding a
// value tree with forward pointers left as placeholders, and a handful
// of appended segments a reader uses to rebase or type-resolve that
// tree without re-walking it.
//
// # Core features
//
//   - Pointer-identity tracking with automatic structural sharing: two
//     fields that reference the same logical value encode to one pointee
//     and a decode that follows two different pointers to it returns the
//     identical cached value.
//   - Content-addressed string interning by default, so repeated string
//     values collapse to one pointee without the caller tracking identity.
//   - An open variant subsystem (the variant package) for schema fields
//     whose concrete type isn't known until decode time.
//
// # Basic usage
//
// Encoding a value tree:
//
//	import (
//		"github.com/hitman-tools/bin1/codec"
//		"github.com/hitman-tools/bin1/value"
//	)
//
//	enc, _ := codec.NewEncoder()
//	root := value.String{Value: "hello"}
//	_ = root.WriteTo(enc)
//	image, _ := enc.Finish()
//
// Decoding it back:
//
//	dec, _ := codec.NewDecoder(image)
//	s, _ := value.ReadString(dec)
//
// # Package structure
//
// This package holds only top-level convenience wrappers around codec,
// value, section, and variant. For schema generation and anything beyond
// the common case, use those packages directly.
package bin1

import (
	"github.com/hitman-tools/bin1/codec"
	"github.com/hitman-tools/bin1/value"
)

// Encode writes root as the body of a new BIN1 image and returns the
// complete, finished bytes. opts configure the encoder (see
// codec.EncodeOption), most commonly codec.WithContentAddressedStrings.
func Encode(root value.Value, opts ...codec.EncodeOption) ([]byte, error) {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	if err := root.WriteTo(enc); err != nil {
		return nil, err
	}

	return enc.Finish()
}

// Decode parses data's header and segments and decodes its root value
// with parse. opts configure the decoder (see codec.DecodeOption), most
// commonly codec.WithStrictEnums.
func Decode[T any](data []byte, parse func(*codec.Decoder) (T, error), opts ...codec.DecodeOption) (T, error) {
	var zero T

	dec, err := codec.NewDecoder(data, opts...)
	if err != nil {
		return zero, err
	}

	return parse(dec)
}
