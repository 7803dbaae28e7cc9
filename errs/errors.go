// Package errs defines the sentinel errors shared across huffzip packages.
//
// Callers can match these with errors.Is after unwrapping, e.g.:
//
//	if errors.Is(err, errs.ErrTruncatedHeader) { ... }
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when a container header buffer does not
	// have the exact fixed header size.
	ErrInvalidHeaderSize = errors.New("invalid container header size")

	// ErrTruncatedHeader is returned when the input ends before a complete
	// container header could be read.
	ErrTruncatedHeader = errors.New("truncated container header")

	// ErrTruncatedBitstream is returned when the packed bitstream ends before
	// the number of symbols promised by the header has been decoded.
	ErrTruncatedBitstream = errors.New("truncated bitstream")

	// ErrNoSymbols is returned when a container header declares a non-zero
	// original length but its frequency table contains no symbols, so no
	// coding tree can be rebuilt.
	ErrNoSymbols = errors.New("frequency table contains no symbols")

	// ErrUnknownCompression is returned by codec factories for an unsupported
	// compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
)
