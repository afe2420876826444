package wave

import (
	"fmt"
	"math"

	"github.com/mass-work/fft-understanding/dsp/core"
)

// Params describes one damped, phase-shifted sinusoid.
//
// Frequency is expressed in cycles spanned by the sample window, not in Hz:
// a signal of frequency f completes f full cycles over the generated points
// regardless of sample rate. Decay is applied per raw sample index, so its
// effective time constant scales with the point count.
type Params struct {
	Frequency float64
	Amplitude float64
	Decay     float64
	PhaseDeg  float64
}

// Generate synthesizes a damped sinusoid of the given length.
//
// Sample n is sin((n/points)*Frequency*2*pi + PhaseDeg*pi/180) * Amplitude *
// exp(-Decay*n), stored in the real part; the imaginary part is zero.
func Generate(points int, p Params) ([]complex128, error) {
	if points <= 0 {
		return nil, fmt.Errorf("wave: points must be > 0: %d: %w", points, core.ErrInvalidLength)
	}
	if err := validateParams(p); err != nil {
		return nil, err
	}

	phase := core.DegToRad(p.PhaseDeg)
	step := p.Frequency * 2 * math.Pi / float64(points)

	out := make([]complex128, points)
	for n := range out {
		v := math.Sin(step*float64(n)+phase) * p.Amplitude * math.Exp(-p.Decay*float64(n))
		out[n] = complex(v, 0)
	}
	return out, nil
}

// Compose sums equal-length signals into one composite signal.
//
// Real and imaginary parts are summed independently. All inputs must have
// the length of the first; at least one signal is required.
func Compose(signals ...[]complex128) ([]complex128, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("wave: compose requires at least one signal: %w", core.ErrInvalidLength)
	}

	n := len(signals[0])
	if n == 0 {
		return nil, fmt.Errorf("wave: compose requires non-empty signals: %w", core.ErrInvalidLength)
	}

	for i, s := range signals[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("wave: signal %d has length %d, want %d: %w",
				i+1, len(s), n, core.ErrMismatchedLength)
		}
	}

	out := make([]complex128, n)
	copy(out, signals[0])
	for _, s := range signals[1:] {
		for i, v := range s {
			out[i] += v
		}
	}
	return out, nil
}

func validateParams(p Params) error {
	if !core.IsFinite(p.Frequency) {
		return fmt.Errorf("wave: frequency must be finite: %v: %w", p.Frequency, core.ErrInvalidParameter)
	}
	if !core.IsFinite(p.Amplitude) {
		return fmt.Errorf("wave: amplitude must be finite: %v: %w", p.Amplitude, core.ErrInvalidParameter)
	}
	if !core.IsFinite(p.Decay) || p.Decay < 0 {
		return fmt.Errorf("wave: decay must be finite and >= 0: %v: %w", p.Decay, core.ErrInvalidParameter)
	}
	if !core.IsFinite(p.PhaseDeg) {
		return fmt.Errorf("wave: phase must be finite: %v: %w", p.PhaseDeg, core.ErrInvalidParameter)
	}
	return nil
}
