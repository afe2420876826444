package core

import "errors"

// Sentinel error kinds shared by all validating entry points.
//
// Packages wrap these with fmt.Errorf and %w so callers can branch with
// errors.Is while still getting a message that names the offending value.
var (
	// ErrInvalidLength reports a non-positive signal length, or a length
	// that is not a power of two where the transform path requires one.
	ErrInvalidLength = errors.New("invalid signal length")

	// ErrMismatchedLength reports an attempt to combine signals of
	// unequal length.
	ErrMismatchedLength = errors.New("mismatched signal lengths")

	// ErrInvalidParameter reports a non-finite or out-of-domain parameter.
	ErrInvalidParameter = errors.New("invalid parameter")
)
