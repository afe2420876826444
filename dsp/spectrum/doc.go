// Package spectrum derives single-sided amplitude and phase spectra from
// transform coefficients.
//
// For a transform of length N only bins [0, N/2) are reported; the folded
// negative-frequency energy is accounted for by doubling the amplitudes.
// Bin k maps to frequency k*sampleRate/N.
package spectrum
