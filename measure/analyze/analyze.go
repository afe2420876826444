// Package analyze runs the full synthesis/analysis pipeline in one shot:
// wave generation, composition, transform, spectra, projection and centroid.
//
// It is the surface a visualization layer calls on every parameter change.
// The package holds no state between calls; debouncing and memoization of
// repeated recomputation belong to the caller.
package analyze

import (
	"fmt"

	"github.com/mass-work/fft-understanding/dsp/core"
	"github.com/mass-work/fft-understanding/dsp/fourier"
	"github.com/mass-work/fft-understanding/dsp/projection"
	"github.com/mass-work/fft-understanding/dsp/spectrum"
	"github.com/mass-work/fft-understanding/dsp/wave"
	frequencystats "github.com/mass-work/fft-understanding/stats/frequency"
)

// Config holds the pipeline parameters.
type Config struct {
	// SampleRate in Hz, used for the frequency axis and the projection.
	SampleRate float64

	// Points is the signal length. Must be a power of two because the
	// composite is transformed.
	Points int

	// TargetFrequency in Hz for the projection stage. It does not need to
	// align with a transform bin.
	TargetFrequency float64

	// Waves lists the sinusoids to compose. At least one is required.
	Waves []wave.Params

	// PhaseOffsetDeg is added to every phase spectrum value before
	// wrapping. Zero leaves the raw atan2 convention.
	PhaseOffsetDeg float64

	// CentroidScale overrides the centroid convention factor. Zero keeps
	// the default of 2.
	CentroidScale float64
}

// Result holds every stage output of one pipeline run.
type Result struct {
	Composite         []complex128
	Coefficients      []complex128
	AmplitudeSpectrum []spectrum.Point
	PhaseSpectrum     []spectrum.Point
	Stats             frequencystats.Stats
	Trajectory        []complex128
	Centroid          complex128
}

// Analyze runs the whole pipeline for cfg.
//
// Any validation failure from a stage is returned unchanged, so callers can
// branch on the core sentinel kinds with errors.Is.
func Analyze(cfg Config) (Result, error) {
	var res Result

	if len(cfg.Waves) == 0 {
		return res, fmt.Errorf("analyze: at least one wave is required: %w", core.ErrInvalidParameter)
	}

	signals := make([][]complex128, len(cfg.Waves))
	for i, p := range cfg.Waves {
		s, err := wave.Generate(cfg.Points, p)
		if err != nil {
			return res, fmt.Errorf("analyze: wave %d: %w", i, err)
		}
		signals[i] = s
	}

	composite, err := wave.Compose(signals...)
	if err != nil {
		return res, fmt.Errorf("analyze: compose: %w", err)
	}
	res.Composite = composite

	coeffs, err := fourier.Transform(composite)
	if err != nil {
		return res, fmt.Errorf("analyze: transform: %w", err)
	}
	res.Coefficients = coeffs

	res.AmplitudeSpectrum, err = spectrum.Amplitude(coeffs, cfg.SampleRate)
	if err != nil {
		return res, fmt.Errorf("analyze: amplitude spectrum: %w", err)
	}

	res.PhaseSpectrum, err = spectrum.Phase(coeffs, cfg.SampleRate,
		spectrum.WithPhaseOffsetDegrees(cfg.PhaseOffsetDeg))
	if err != nil {
		return res, fmt.Errorf("analyze: phase spectrum: %w", err)
	}

	res.Stats = frequencystats.Calculate(res.AmplitudeSpectrum)

	res.Trajectory, err = projection.AtFrequency(composite, cfg.TargetFrequency, cfg.SampleRate)
	if err != nil {
		return res, fmt.Errorf("analyze: projection: %w", err)
	}

	var opts []projection.Option
	if cfg.CentroidScale != 0 {
		opts = append(opts, projection.WithCentroidScale(cfg.CentroidScale))
	}
	res.Centroid, err = projection.Centroid(res.Trajectory, opts...)
	if err != nil {
		return res, fmt.Errorf("analyze: centroid: %w", err)
	}

	return res, nil
}
