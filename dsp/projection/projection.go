// Package projection rotates a signal against an arbitrary target frequency
// and summarizes the resulting trajectory.
//
// Unlike a classical single-bin DFT sum, which collapses a signal to one
// coefficient, AtFrequency keeps the full per-sample trajectory so a caller
// can draw the winding path. Centroid reduces that trajectory to the single
// point the path revolves around; at a frequency actually present in the
// signal the trajectory stops cancelling itself and the centroid moves away
// from the origin.
package projection

import (
	"fmt"
	"math"

	"github.com/mass-work/fft-understanding/dsp/core"
)

// defaultCentroidScale matches the single-sided amplitude convention: a unit
// sinusoid projected at its own frequency yields a centroid of magnitude 1.
const defaultCentroidScale = 2.0

// AtFrequency rotates each sample of data by the phasor of the target
// frequency, returning the full trajectory.
//
// Sample n is multiplied by cos(a)+i*sin(a) with a = 2*pi*targetHz*n/sampleRate.
// Any signal length is accepted; targetHz does not have to align with a
// transform bin. A target frequency of zero returns an unrotated copy.
func AtFrequency(data []complex128, targetHz, sampleRate float64) ([]complex128, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("projection: signal must not be empty: %w", core.ErrInvalidLength)
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("projection: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidParameter)
	}
	if !core.IsFinite(targetHz) {
		return nil, fmt.Errorf("projection: target frequency must be finite: %v: %w", targetHz, core.ErrInvalidParameter)
	}

	step := 2 * math.Pi * targetHz / sampleRate

	out := make([]complex128, len(data))
	for n, v := range data {
		a := step * float64(n)
		sin, cos := math.Sincos(a)
		out[n] = complex(
			real(v)*cos-imag(v)*sin,
			imag(v)*cos+real(v)*sin,
		)
	}
	return out, nil
}

// Option configures trajectory summarization.
type Option func(*config)

type config struct {
	centroidScale float64
}

// WithCentroidScale overrides the convention factor applied to the centroid.
// Non-finite values are ignored.
func WithCentroidScale(scale float64) Option {
	return func(cfg *config) {
		if core.IsFinite(scale) {
			cfg.centroidScale = scale
		}
	}
}

// Centroid returns the mean of a trajectory's real and imaginary components,
// scaled by the centroid convention factor (2 by default).
//
// This approximates the DC component of the rotated trajectory and collapses
// to the classical DFT coefficient at the targeted frequency.
func Centroid(trajectory []complex128, opts ...Option) (complex128, error) {
	if len(trajectory) == 0 {
		return 0, fmt.Errorf("projection: trajectory must not be empty: %w", core.ErrInvalidLength)
	}

	cfg := config{centroidScale: defaultCentroidScale}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var sumRe, sumIm float64
	for _, v := range trajectory {
		sumRe += real(v)
		sumIm += imag(v)
	}

	inv := cfg.centroidScale / float64(len(trajectory))
	return complex(sumRe*inv, sumIm*inv), nil
}
