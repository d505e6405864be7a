package raincal

import "errors"

// ErrInvalidInput reports non-positive grid dimensions, a zero cell count,
// a non-positive physical target, or a non-positive base rate.
//
// Every public operation validates its own inputs against this error and
// fails fast: callers never receive a partial result alongside it. There
// are no transient or retryable failures anywhere in the package; all
// computation is pure arithmetic over validated values.
var ErrInvalidInput = errors.New("invalid input")
