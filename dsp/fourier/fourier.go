package fourier

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/mass-work/fft-understanding/dsp/core"
)

// Transform computes the forward discrete Fourier transform of in.
//
// The input length must be a power of two. Bin k of the result corresponds
// to frequency k*sampleRate/N for a caller-chosen sample rate. The input is
// not modified; a length of 1 returns a copy unchanged.
func Transform(in []complex128) ([]complex128, error) {
	return transform(in, -1)
}

// Inverse computes the inverse discrete Fourier transform of in, including
// the 1/N normalization, so Inverse(Transform(x)) reproduces x up to
// floating-point rounding.
func Inverse(in []complex128) ([]complex128, error) {
	out, err := transform(in, +1)
	if err != nil {
		return nil, err
	}

	scale := complex(1/float64(len(out)), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

func transform(in []complex128, sign float64) ([]complex128, error) {
	n := len(in)
	if n <= 0 {
		return nil, fmt.Errorf("fourier: length must be > 0: %d: %w", n, core.ErrInvalidLength)
	}
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("fourier: length must be a power of two: %d: %w", n, core.ErrInvalidLength)
	}

	out := make([]complex128, n)
	copy(out, in)
	if n == 1 {
		return out, nil
	}

	bitReverse(out)

	// Bottom-up butterflies; each size doubles the transformed span.
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := sign * 2 * math.Pi / float64(size)

		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := complex(math.Cos(step*float64(j)), math.Sin(step*float64(j)))
				even := out[start+j]
				odd := w * out[start+j+half]
				out[start+j] = even + odd
				out[start+j+half] = even - odd
			}
		}
	}

	return out, nil
}

// bitReverse permutes x into bit-reversed index order. len(x) must be a
// power of two.
func bitReverse(x []complex128) {
	n := len(x)
	shift := 64 - uint(bits.TrailingZeros(uint(n)))

	for i := range x {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
}
