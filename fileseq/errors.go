package fileseq

import "errors"

// Sentinel errors identifying the failure kinds surfaced by this package.
// Wrapped errors returned by package functions satisfy errors.Is against
// these values.
var (
	// ErrParse indicates a textual spec did not match the grammar for the
	// value being parsed.
	ErrParse = errors.New("fileseq: parse error")

	// ErrInvalidRange indicates range parameters violate FrameRange's
	// validity rules, or a frame number overflows 32 bits.
	ErrInvalidRange = errors.New("fileseq: invalid range")

	// ErrPaddingMismatch indicates an operation required combine-compatible
	// padding and the operands were incompatible.
	ErrPaddingMismatch = errors.New("fileseq: padding mismatch")

	// ErrOutOfRange indicates an index or frame query fell outside the set.
	ErrOutOfRange = errors.New("fileseq: out of range")

	// ErrInvalidField indicates a setter argument violated its structural
	// requirement.
	ErrInvalidField = errors.New("fileseq: invalid field")

	// ErrMergeMismatch indicates a merge was attempted between
	// FileSequences with differing prefix or suffix.
	ErrMergeMismatch = errors.New("fileseq: merge mismatch")
)
