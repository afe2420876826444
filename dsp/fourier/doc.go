// Package fourier implements the radix-2 discrete Fourier transform used by
// the synthesis/analysis pipeline.
//
// The transform follows the decimation-in-time recurrence: split into even
// and odd index subsequences, transform both halves, then combine with
// twiddle factors exp(-2*pi*i*k/N). It is realized as an index-strided
// in-place butterfly over a single buffer rather than recursive slicing, so
// a call allocates only its output.
//
// Lengths must be powers of two. Non-conforming lengths fail hard with
// core.ErrInvalidLength instead of silently degrading; for real-valued
// input the upper half of the output mirrors the lower half by conjugate
// symmetry.
package fourier
