package projection

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mass-work/fft-understanding/dsp/core"
	"github.com/mass-work/fft-understanding/internal/testutil"
)

func TestAtFrequencyZeroIsIdentity(t *testing.T) {
	in := testutil.ComplexNoise(5, 1, 200)

	out, err := AtFrequency(in, 0, 1000)
	if err != nil {
		t.Fatalf("AtFrequency: %v", err)
	}

	for n := range in {
		if out[n] != in[n] {
			t.Fatalf("sample %d: %v, want %v", n, out[n], in[n])
		}
	}

	// The identity case must still return a copy.
	out[0] = 99
	if in[0] == 99 {
		t.Fatalf("projection aliased its input")
	}
}

func TestAtFrequencyRotationFormula(t *testing.T) {
	in := []complex128{complex(1, 0), complex(0.5, -0.25), complex(-1, 2)}
	const targetHz, sampleRate = 12.5, 100.0

	out, err := AtFrequency(in, targetHz, sampleRate)
	if err != nil {
		t.Fatalf("AtFrequency: %v", err)
	}

	for n, v := range in {
		a := 2 * math.Pi * targetHz * float64(n) / sampleRate
		want := complex(
			real(v)*math.Cos(a)-imag(v)*math.Sin(a),
			imag(v)*math.Cos(a)+real(v)*math.Sin(a),
		)
		if !core.NearlyEqualComplex(out[n], want, 1e-12) {
			t.Fatalf("sample %d: %v, want %v", n, out[n], want)
		}
	}
}

func TestAtFrequencyPreservesMagnitude(t *testing.T) {
	in := testutil.ComplexNoise(11, 1, 333)

	out, err := AtFrequency(in, 7.77, 441)
	if err != nil {
		t.Fatalf("AtFrequency: %v", err)
	}

	for n := range in {
		if !core.NearlyEqual(cmplx.Abs(out[n]), cmplx.Abs(in[n]), 1e-12) {
			t.Fatalf("sample %d: |out| = %v, |in| = %v", n, cmplx.Abs(out[n]), cmplx.Abs(in[n]))
		}
	}
}

func TestAtFrequencyAnyLength(t *testing.T) {
	// No power-of-two requirement on the projection path.
	for _, n := range []int{1, 3, 100, 1000} {
		in := testutil.ComplexNoise(int64(n), 1, n)
		out, err := AtFrequency(in, 5, 250)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(out) != n {
			t.Fatalf("n=%d: len = %d", n, len(out))
		}
	}
}

func TestAtFrequencyInvalidInputs(t *testing.T) {
	if _, err := AtFrequency(nil, 1, 100); !errors.Is(err, core.ErrInvalidLength) {
		t.Fatalf("empty signal: err = %v, want ErrInvalidLength", err)
	}

	in := make([]complex128, 8)
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := AtFrequency(in, 1, rate); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("rate=%v: err = %v, want ErrInvalidParameter", rate, err)
		}
	}
	for _, f := range []float64{math.NaN(), math.Inf(-1)} {
		if _, err := AtFrequency(in, f, 100); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("target=%v: err = %v, want ErrInvalidParameter", f, err)
		}
	}
}

func TestCentroidAtMatchingFrequency(t *testing.T) {
	// A unit sine completing whole cycles, projected at its own frequency,
	// has a centroid of magnitude 1 on the imaginary axis.
	const points, sampleRate = 512, 512.0
	sine := testutil.RealSine(10, points, 1)

	traj, err := AtFrequency(sine, 10, sampleRate)
	if err != nil {
		t.Fatalf("AtFrequency: %v", err)
	}

	c, err := Centroid(traj)
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}

	if !core.NearlyEqualComplex(c, complex(0, 1), 1e-9) {
		t.Fatalf("centroid = %v, want 0+1i", c)
	}
}

func TestCentroidAtForeignFrequency(t *testing.T) {
	// Projected at a frequency absent from the signal, the trajectory winds
	// around the origin and the centroid cancels toward zero.
	const points, sampleRate = 512, 512.0
	sine := testutil.RealSine(10, points, 1)

	traj, err := AtFrequency(sine, 40, sampleRate)
	if err != nil {
		t.Fatalf("AtFrequency: %v", err)
	}

	c, err := Centroid(traj)
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}

	if cmplx.Abs(c) > 1e-9 {
		t.Fatalf("|centroid| = %v, want ~0", cmplx.Abs(c))
	}
}

func TestCentroidMeanAndScale(t *testing.T) {
	traj := []complex128{complex(1, 2), complex(3, -2), complex(-1, 3)}

	c, err := Centroid(traj)
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}
	// Mean is (1, 1); default scale doubles it.
	if !core.NearlyEqualComplex(c, complex(2, 2), 1e-12) {
		t.Fatalf("centroid = %v, want 2+2i", c)
	}

	c, err = Centroid(traj, WithCentroidScale(1))
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}
	if !core.NearlyEqualComplex(c, complex(1, 1), 1e-12) {
		t.Fatalf("unscaled centroid = %v, want 1+1i", c)
	}
}

func TestCentroidIgnoresInvalidScale(t *testing.T) {
	traj := []complex128{complex(1, 1)}

	c, err := Centroid(traj, WithCentroidScale(math.NaN()))
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}
	if !core.NearlyEqualComplex(c, complex(2, 2), 1e-12) {
		t.Fatalf("centroid = %v, want default scale", c)
	}
}

func TestCentroidEmptyTrajectory(t *testing.T) {
	if _, err := Centroid(nil); !errors.Is(err, core.ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}
