package spectrum

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/mass-work/fft-understanding/dsp/core"
)

// Point is one spectrum sample: a frequency and the value measured there.
// Value is a linear amplitude for [Amplitude] and degrees for [Phase].
type Point struct {
	FrequencyHz float64
	Value       float64
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Amplitude derives the single-sided amplitude spectrum from transform
// coefficients.
//
// For coefficients of length N it returns N/2 points with
// value 2*|X[k]|/N at frequency k*sampleRate/N. Magnitudes are computed
// with vectorized routines over pooled scratch planes, so in steady state
// only the output slice is allocated.
func Amplitude(coeffs []complex128, sampleRate float64) ([]Point, error) {
	if err := validate(coeffs, sampleRate); err != nil {
		return nil, err
	}

	n := len(coeffs)
	half := n / 2
	binHz := sampleRate / float64(n)
	scale := 2 / float64(n)

	re, im, buf := getScratch(half)
	for k := range half {
		re[k] = real(coeffs[k])
		im[k] = imag(coeffs[k])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)
	putScratch(buf)

	out := make([]Point, half)
	for k := range out {
		out[k] = Point{
			FrequencyHz: float64(k) * binHz,
			Value:       mag[k] * scale,
		}
	}
	return out, nil
}

// Option configures phase derivation.
type Option func(*config)

type config struct {
	phaseOffsetDeg float64
}

// WithPhaseOffsetDegrees adds a fixed display offset to every phase value
// before wrapping. Visualizations that want a cosine reference use +90.
// Non-finite values are ignored.
func WithPhaseOffsetDegrees(deg float64) Option {
	return func(cfg *config) {
		if core.IsFinite(deg) {
			cfg.phaseOffsetDeg = deg
		}
	}
}

// Phase derives the single-sided phase spectrum in degrees from transform
// coefficients.
//
// For coefficients of length N it returns N/2 points with value
// atan2(im, re)*180/pi plus the configured offset, wrapped into (-180, 180],
// at frequency k*sampleRate/N.
func Phase(coeffs []complex128, sampleRate float64, opts ...Option) ([]Point, error) {
	if err := validate(coeffs, sampleRate); err != nil {
		return nil, err
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(coeffs)
	half := n / 2
	binHz := sampleRate / float64(n)

	out := make([]Point, half)
	for k := range out {
		deg := core.RadToDeg(math.Atan2(imag(coeffs[k]), real(coeffs[k])))
		out[k] = Point{
			FrequencyHz: float64(k) * binHz,
			Value:       core.WrapDegrees(deg + cfg.phaseOffsetDeg),
		}
	}
	return out, nil
}

func validate(coeffs []complex128, sampleRate float64) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("spectrum: coefficients must not be empty: %w", core.ErrInvalidLength)
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("spectrum: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidParameter)
	}
	return nil
}
