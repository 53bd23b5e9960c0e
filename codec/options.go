package codec

import "github.com/hitman-tools/bin1/internal/options"

// EncodeOptions configures an Encoder. The zero value matches the
// source format's default behavior.
type EncodeOptions struct {
	// ContentAddressedStrings, when true, derives a written string's
	// pointer identity from a hash of its content instead of minting a
	// fresh one, so two equal strings written anywhere in one encode
	// share a single pointee. Defaults to true.
	ContentAddressedStrings bool
}

// EncodeOption is a functional option for NewEncoder.
type EncodeOption = options.Option[*EncodeOptions]

func newEncodeOptions(opts []EncodeOption) (EncodeOptions, error) {
	cfg := EncodeOptions{ContentAddressedStrings: true}
	if err := options.Apply(&cfg, opts...); err != nil {
		return EncodeOptions{}, err
	}

	return cfg, nil
}

// WithContentAddressedStrings toggles whether written strings are
// deduplicated by content hash (the default) or always given a fresh
// identity.
func WithContentAddressedStrings(enabled bool) EncodeOption {
	return options.NoError(func(o *EncodeOptions) {
		o.ContentAddressedStrings = enabled
	})
}

// DecodeOptions configures a Decoder.
type DecodeOptions struct {
	// StrictEnums only affects enums with zero declared discriminants
	// (the uninhabited "Value" fallback, decoded via
	// value.ReadUninhabitedEnum): when true, it turns that fallback's
	// default warn-and-accept behavior into a hard error. It has no
	// effect on regular, inhabited enums — those are always fatal on an
	// unknown discriminant regardless of this setting.
	StrictEnums bool
	// EnumWarn, if set, is invoked whenever the uninhabited enum
	// fallback decodes a value while StrictEnums is false. Defaults to
	// a no-op. Not consulted for regular enums.
	EnumWarn func(enumName string, got int64)
}

// DecodeOption is a functional option for NewDecoder.
type DecodeOption = options.Option[*DecodeOptions]

func newDecodeOptions(opts []DecodeOption) (DecodeOptions, error) {
	cfg := DecodeOptions{EnumWarn: func(string, int64) {}}
	if err := options.Apply(&cfg, opts...); err != nil {
		return DecodeOptions{}, err
	}

	return cfg, nil
}

// WithStrictEnums makes values decoded by the uninhabited enum fallback a
// decode error (see DecodeOptions.StrictEnums).
func WithStrictEnums(enabled bool) DecodeOption {
	return options.NoError(func(o *DecodeOptions) {
		o.StrictEnums = enabled
	})
}

// WithEnumWarnHook installs a callback invoked on every value the
// uninhabited enum fallback decodes while StrictEnums is false. Regular
// enums never invoke it.
func WithEnumWarnHook(fn func(enumName string, got int64)) DecodeOption {
	return options.NoError(func(o *DecodeOptions) {
		o.EnumWarn = fn
	})
}
