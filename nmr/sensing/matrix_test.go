package sensing

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-nmr/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

func TestMeasureMatchesRowDotProducts(t *testing.T) {
	b, _ := NewBuilder(WithSeed(11))
	x := testutil.DeterministicNoise(1, 100, 100)

	for _, phi := range buildBoth(t, b, 12, 100) {
		y, err := phi.Measure(x)
		if err != nil {
			t.Fatalf("Measure() error = %v", err)
		}
		if len(y) != 12 {
			t.Fatalf("len = %d, want 12", len(y))
		}
		for i := range y {
			want := floats.Dot(phi.Row(i), x)
			if d := y[i] - want; d > 1e-9 || d < -1e-9 {
				t.Fatalf("%s: y[%d] = %v, want %v", phi.Ensemble(), i, y[i], want)
			}
		}
	}
}

func TestMeasureDimensionMismatch(t *testing.T) {
	phi, err := NewGaussian(12, 100)
	if err != nil {
		t.Fatalf("NewGaussian() error = %v", err)
	}
	if _, err := phi.Measure(make([]float64, 50)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Measure() error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := phi.MeasureComplex(make([]complex128, 101)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("MeasureComplex() error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := phi.MeasureInt32(nil); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("MeasureInt32() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestMeasureLinearity(t *testing.T) {
	const (
		n = 256
		a = 2.5
		c = -0.75
	)
	b, _ := NewBuilder(WithSeed(2024))
	x := testutil.DeterministicNoise(3, 1000, n)
	y := testutil.DeterministicNoise(4, 1000, n)

	combo := make([]float64, n)
	floats.AddScaledTo(combo, floats.ScaleTo(make([]float64, n), a, x), c, y)

	for _, phi := range buildBoth(t, b, 32, n) {
		lhs, err := phi.Measure(combo)
		if err != nil {
			t.Fatalf("Measure() error = %v", err)
		}
		mx, _ := phi.Measure(x)
		my, _ := phi.Measure(y)

		rhs := make([]float64, len(mx))
		floats.AddScaledTo(rhs, floats.ScaleTo(make([]float64, len(mx)), a, mx), c, my)

		testutil.RequireSliceNearlyEqual(t, lhs, rhs, 1e-6)
	}
}

func TestMeasureComplex(t *testing.T) {
	b, _ := NewBuilder(WithSeed(8))
	re := testutil.DeterministicNoise(5, 10, 40)
	im := testutil.DeterministicNoise(6, 10, 40)
	x := make([]complex128, len(re))
	for i := range x {
		x[i] = complex(re[i], im[i])
	}

	for _, phi := range buildBoth(t, b, 5, 40) {
		got, err := phi.MeasureComplex(x)
		if err != nil {
			t.Fatalf("MeasureComplex() error = %v", err)
		}
		yr, _ := phi.Measure(re)
		yi, _ := phi.Measure(im)
		want := make([]complex128, len(yr))
		for i := range want {
			want[i] = complex(yr[i], yi[i])
		}
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-12)
	}
}

func TestMeasureInt32(t *testing.T) {
	b, _ := NewBuilder(WithSeed(9))
	phi, _ := b.Bernoulli(3, 4)
	got, err := phi.MeasureInt32([]int32{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("MeasureInt32() error = %v", err)
	}
	want, _ := phi.Measure([]float64{1, 2, 3, 4})
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestMatrixIsNotMutatedThroughCopies(t *testing.T) {
	b, _ := NewBuilder(WithSeed(10))
	phi, _ := b.Gaussian(2, 3)
	before := phi.At(0, 0)

	d := phi.Dense()
	d.Set(0, 0, before+100)
	row := phi.Row(0)
	row[0] = before + 200

	if phi.At(0, 0) != before {
		t.Fatalf("At(0, 0) = %v after modifying copies, want %v", phi.At(0, 0), before)
	}
}
