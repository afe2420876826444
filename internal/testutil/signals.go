// Package testutil provides deterministic complex-valued test signals.
package testutil

import (
	"math"
	"math/rand"
)

// ComplexTone generates a complex exponential exp(2*pi*i*bin*n/length),
// scaled by amplitude. With an integer bin it concentrates all transform
// energy in that single bin.
func ComplexTone(bin float64, length int, amplitude float64) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * bin / float64(length)
	for n := range out {
		a := step * float64(n)
		out[n] = complex(amplitude*math.Cos(a), amplitude*math.Sin(a))
	}
	return out
}

// ComplexImpulse generates a unit impulse at the given position.
func ComplexImpulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// ComplexNoise generates complex white noise with a fixed seed for
// reproducibility. Both components are uniform in [-amplitude, amplitude].
func ComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// RealSine generates a real-valued sine completing cycles full periods over
// length samples, stored in the real parts.
func RealSine(cycles float64, length int, amplitude float64) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * cycles / float64(length)
	for n := range out {
		out[n] = complex(amplitude*math.Sin(step*float64(n)), 0)
	}
	return out
}
