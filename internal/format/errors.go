package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadSize indicates a declared size failed a sanity or alignment check.
	ErrBadSize = errors.New("format: invalid size")
	// ErrUnsupported indicates a recognized but unhandled structure variant.
	ErrUnsupported = errors.New("format: unsupported feature")
)
