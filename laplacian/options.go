// Package laplacian: functional options for the normalizers and Compute.

package laplacian

// Default option values; DefaultOptions is the single source of truth.
const (
	// DefaultRoundDigits disables output rounding.
	DefaultRoundDigits = -1

	// maxRoundDigits bounds WithRoundDigits to float64's decimal precision.
	maxRoundDigits = 15
)

// Options configures the Laplacian normalizers and the Compute pipeline.
//
// StrictDegrees fails fast with ErrSingularDegree when a degree entry is
// non-positive (Symmetric and RandomWalk only; Adaptive never divides by
// zero and ignores the flag). Default false: degenerate scale factors are
// zeroed out, so isolated nodes yield zero rows/columns instead of NaN/Inf.
//
// RoundDigits, when >= 0, rounds the produced Laplacian to that many
// decimal digits (ties away from zero) as a final step. Default -1: output
// is returned at full precision.
type Options struct {
	StrictDegrees bool
	RoundDigits   int
}

// Option represents a functional option for configuring the normalizers.
type Option func(*Options)

// WithStrictDegrees switches Symmetric and RandomWalk from zeroing degenerate
// scale factors to failing fast with ErrSingularDegree.
func WithStrictDegrees() Option {
	return func(o *Options) {
		o.StrictDegrees = true
	}
}

// WithRoundDigits rounds every entry of the produced Laplacian to the given
// number of decimal digits, ties away from zero. digits must lie in [0, 15];
// values outside that range panic with ErrBadDigits.
func WithRoundDigits(digits int) Option {
	if digits < 0 || digits > maxRoundDigits {
		panic(ErrBadDigits.Error())
	}

	return func(o *Options) {
		o.RoundDigits = digits
	}
}

// DefaultOptions returns the Options used when no overrides are supplied.
//
// Defaults:
//   - StrictDegrees: false (degenerate factors zero out, nothing fails).
//   - RoundDigits:   DefaultRoundDigits (-1, full precision).
func DefaultOptions() Options {
	return Options{
		StrictDegrees: false,
		RoundDigits:   DefaultRoundDigits,
	}
}

// newOptions resolves the variadic option list over DefaultOptions,
// applying overrides in order (last wins).
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
