// Package frequency computes summary statistics over a single-sided
// amplitude spectrum for display alongside the spectrum itself.
package frequency

import (
	"math"

	"github.com/mass-work/fft-understanding/dsp/spectrum"
)

// Stats holds frequency-domain statistics computed from an amplitude
// spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 amplitude
	Peak     float64
	PeakHz   float64
	Sum      float64
	Average  float64
	Energy   float64 // sum of squared amplitudes
	// Spectral shape descriptors
	Centroid float64 // amplitude-weighted mean frequency (Hz)
	Spread   float64 // amplitude-weighted frequency deviation (Hz)
	Flatness float64 // Wiener entropy, 0..1
	Rolloff  float64 // frequency below which 85% of the energy lies (Hz)
}

// rolloffFraction is the energy fraction used for the rolloff descriptor.
const rolloffFraction = 0.85

// Calculate computes all statistics from a single-sided amplitude spectrum
// as produced by [spectrum.Amplitude]. An empty input yields zero stats.
func Calculate(points []spectrum.Point) Stats {
	var s Stats
	if len(points) == 0 {
		return s
	}

	s.BinCount = len(points)
	s.DC = points[0].Value
	s.Peak = points[0].Value
	s.PeakHz = points[0].FrequencyHz

	for _, p := range points {
		s.Sum += p.Value
		s.Energy += p.Value * p.Value
		if p.Value > s.Peak {
			s.Peak = p.Value
			s.PeakHz = p.FrequencyHz
		}
	}
	s.Average = s.Sum / float64(len(points))

	s.Centroid = centroid(points, s.Sum)
	s.Spread = spread(points, s.Centroid, s.Sum)
	s.Flatness = flatness(points)
	s.Rolloff = rolloff(points, s.Energy)

	return s
}

// Centroid returns the amplitude-weighted mean frequency in Hz.
func Centroid(points []spectrum.Point) float64 {
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return centroid(points, sum)
}

func centroid(points []spectrum.Point, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	weighted := 0.0
	for _, p := range points {
		weighted += p.FrequencyHz * p.Value
	}
	return weighted / sum
}

func spread(points []spectrum.Point, centroidHz, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	variance := 0.0
	for _, p := range points {
		d := p.FrequencyHz - centroidHz
		variance += d * d * p.Value
	}
	return math.Sqrt(variance / sum)
}

// Flatness returns the ratio of geometric to arithmetic mean amplitude.
// A flat (noise-like) spectrum approaches 1, a single tone approaches 0.
func Flatness(points []spectrum.Point) float64 {
	return flatness(points)
}

func flatness(points []spectrum.Point) float64 {
	if len(points) == 0 {
		return 0
	}

	const floor = 1e-20
	logSum := 0.0
	sum := 0.0
	for _, p := range points {
		v := p.Value
		if v < floor {
			v = floor
		}
		logSum += math.Log(v)
		sum += v
	}

	arith := sum / float64(len(points))
	if arith == 0 {
		return 0
	}
	geo := math.Exp(logSum / float64(len(points)))
	return geo / arith
}

func rolloff(points []spectrum.Point, energy float64) float64 {
	if energy == 0 {
		return 0
	}

	target := rolloffFraction * energy
	acc := 0.0
	for _, p := range points {
		acc += p.Value * p.Value
		if acc >= target {
			return p.FrequencyHz
		}
	}
	return points[len(points)-1].FrequencyHz
}
