package boson

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Check with errors.Is against the returned error;
// every error this package returns wraps exactly one of these.
var (
	// ErrVersionMismatch: the first byte of input is not the version this
	// decoder understands.
	ErrVersionMismatch = errors.New("boson: version mismatch")

	// ErrUnsupportedTag: a tag byte outside the defined wire grammar.
	ErrUnsupportedTag = errors.New("boson: unsupported tag")

	// ErrTruncated: a read would run past the end of the available input.
	ErrTruncated = errors.New("boson: truncated input")

	// ErrDanglingReference: a REFERENCE tag names an id not yet registered.
	ErrDanglingReference = errors.New("boson: dangling reference")

	// ErrMissingClass: a record or enum class name could not be resolved.
	ErrMissingClass = errors.New("boson: missing class")

	// ErrUnsupportedValue: the encoder was asked to emit a value of a kind
	// it will never support (e.g. an error/throwable value).
	ErrUnsupportedValue = errors.New("boson: unsupported value")

	// ErrInvalidData: a wrapper for I/O failure or structural corruption
	// that doesn't fit one of the more specific kinds above.
	ErrInvalidData = errors.New("boson: invalid data")

	// ErrUnknownEnumConstant: only surfaced when WithStrictEnums(true) is
	// set; otherwise an unresolvable enum constant decodes to nil.
	ErrUnknownEnumConstant = errors.New("boson: unknown enum constant")
)

// wireError wraps one of the sentinel errors above with context: a small
// struct carrying the sentinel and a human message, unwrapping to the
// sentinel so callers can use errors.Is/errors.As.
type wireError struct {
	kind    error
	message string
}

func newError(kind error, format string, args ...any) error {
	return &wireError{kind: kind, message: fmt.Sprintf(format, args...)}
}

func (e *wireError) Error() string {
	if e.message == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.message
}

func (e *wireError) Unwrap() error {
	return e.kind
}
