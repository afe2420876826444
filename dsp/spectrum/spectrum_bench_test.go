package spectrum

import (
	"fmt"
	"testing"

	"github.com/mass-work/fft-understanding/internal/testutil"
)

func BenchmarkAmplitude(b *testing.B) {
	for _, n := range []int{64, 256, 1024, 4096, 16384} {
		coeffs := testutil.ComplexNoise(1, 100, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 16))
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Amplitude(coeffs, 48000); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPhase(b *testing.B) {
	for _, n := range []int{256, 4096} {
		coeffs := testutil.ComplexNoise(2, 100, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 16))
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Phase(coeffs, 48000); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
