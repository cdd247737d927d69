package boson

// encodeConfig holds the encoder-side knobs for a single call.
type encodeConfig struct {
	serializeFinalFields bool
}

// EncodeOption configures a single Encode/EncodeTo call.
type EncodeOption func(*encodeConfig)

// WithSerializeFinalFields controls whether slots marked readonly (Go's
// analogue of a Java final field, see record.StructTag) are written.
// Default: false.
func WithSerializeFinalFields(v bool) EncodeOption {
	return func(c *encodeConfig) { c.serializeFinalFields = v }
}

// decodeConfig holds the decoder-side knobs for a single call.
type decodeConfig struct {
	readRecordsAsMap bool
	strictEnums      bool
}

// ReadOption configures a single Decode/DecodeFrom call.
type ReadOption func(*decodeConfig)

// WithRecordsAsMap toggles record-mode decoding to produce
// map[string]any values instead of struct instances (readRecordsAsMap).
func WithRecordsAsMap(v bool) ReadOption {
	return func(c *decodeConfig) { c.readRecordsAsMap = v }
}

// WithStrictEnums makes an unresolvable enum constant surface
// ErrUnknownEnumConstant instead of silently decoding to nil. This is an
// addition beyond the literal source behaviour (see DESIGN.md, Open
// Question 2); default is false, matching the source's silent-nil default.
func WithStrictEnums(v bool) ReadOption {
	return func(c *decodeConfig) { c.strictEnums = v }
}
