package ensemble

import "errors"

var (
	// ErrInvalidParameter reports a negative length, an out-of-range
	// probability, or an empty ensemble.
	ErrInvalidParameter = errors.New("ensemble: invalid parameter")

	// ErrLengthMismatch reports sequences that should be positionally aligned
	// but differ in length.
	ErrLengthMismatch = errors.New("ensemble: length mismatch")

	// ErrDegenerateMetric reports a metric whose denominator is zero, for
	// example precision when a class was never predicted. Callers can
	// distinguish this from a genuine score of zero.
	ErrDegenerateMetric = errors.New("ensemble: degenerate metric")
)
