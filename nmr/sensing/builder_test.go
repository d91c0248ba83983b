package sensing

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func buildBoth(t *testing.T, b *Builder, m, n int) []*Matrix {
	t.Helper()
	g, err := b.Gaussian(m, n)
	if err != nil {
		t.Fatalf("Gaussian(%d, %d) error = %v", m, n, err)
	}
	bern, err := b.Bernoulli(m, n)
	if err != nil {
		t.Fatalf("Bernoulli(%d, %d) error = %v", m, n, err)
	}
	return []*Matrix{g, bern}
}

func TestMatrixShape(t *testing.T) {
	b, err := NewBuilder(WithSeed(1))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	for _, dims := range [][2]int{{1, 1}, {1, 17}, {12, 100}, {64, 64}, {3, 1000}} {
		for _, phi := range buildBoth(t, b, dims[0], dims[1]) {
			r, c := phi.Dims()
			if r != dims[0] || c != dims[1] {
				t.Fatalf("%s dims = (%d, %d), want (%d, %d)", phi.Ensemble(), r, c, dims[0], dims[1])
			}
			if phi.Rows() != r || phi.Cols() != c {
				t.Fatalf("Rows/Cols = (%d, %d), want (%d, %d)", phi.Rows(), phi.Cols(), r, c)
			}
		}
	}
}

func TestBernoulliValues(t *testing.T) {
	m, err := MeasurementCount(100, 0.125)
	if err != nil {
		t.Fatalf("MeasurementCount() error = %v", err)
	}
	phi, err := NewBernoulli(m, 100)
	if err != nil {
		t.Fatalf("NewBernoulli() error = %v", err)
	}
	if phi.Rows() != 12 {
		t.Fatalf("rows = %d, want 12", phi.Rows())
	}
	if phi.Ensemble() != Bernoulli {
		t.Fatalf("ensemble = %v, want bernoulli", phi.Ensemble())
	}
	for i := range phi.Rows() {
		for j := range phi.Cols() {
			if v := phi.At(i, j); v != 0 && v != 1 {
				t.Fatalf("entry (%d, %d) = %v, want 0 or 1", i, j, v)
			}
		}
	}
}

func TestBernoulliBalance(t *testing.T) {
	b, _ := NewBuilder(WithSeed(7))
	phi, err := b.Bernoulli(100, 1000)
	if err != nil {
		t.Fatalf("Bernoulli() error = %v", err)
	}
	mean := stat.Mean(phi.Dense().RawMatrix().Data, nil)
	if math.Abs(mean-0.5) > 0.02 {
		t.Fatalf("mean = %v, want about 0.5", mean)
	}
}

func TestGaussianStatistics(t *testing.T) {
	const m = 10
	b, _ := NewBuilder(WithSeed(42))
	phi, err := b.Gaussian(m, 20000)
	if err != nil {
		t.Fatalf("Gaussian() error = %v", err)
	}

	mean, std := stat.MeanStdDev(phi.Dense().RawMatrix().Data, nil)
	if math.Abs(mean) > 0.002 {
		t.Fatalf("mean = %v, want about 0", mean)
	}
	if want := 1.0 / m; math.Abs(std-want) > 0.005 {
		t.Fatalf("std = %v, want about %v", std, want)
	}
}

func TestInvalidDimensions(t *testing.T) {
	b, _ := NewBuilder()
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		if _, err := b.Gaussian(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("Gaussian(%d, %d) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
		if _, err := b.Bernoulli(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("Bernoulli(%d, %d) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
	if _, err := b.Build(Ensemble(9), 2, 2); !errors.Is(err, ErrInvalidEnsemble) {
		t.Fatalf("Build(9) error = %v, want ErrInvalidEnsemble", err)
	}
}

func TestDegenerateTarget(t *testing.T) {
	b, _ := NewBuilder()
	for _, e := range []Ensemble{Gaussian, Bernoulli} {
		phi, err := b.ForTarget(e, 3, 0.125)
		if !errors.Is(err, ErrDegenerateMeasurement) {
			t.Fatalf("ForTarget(%s, 3, 0.125) error = %v, want ErrDegenerateMeasurement", e, err)
		}
		if phi != nil {
			t.Fatalf("ForTarget(%s) returned a matrix alongside error", e)
		}
	}
}

func TestForTarget(t *testing.T) {
	b, _ := NewBuilder(WithSeed(3))
	phi, err := b.ForTarget(Gaussian, 100, 0.125)
	if err != nil {
		t.Fatalf("ForTarget() error = %v", err)
	}
	if r, c := phi.Dims(); r != 12 || c != 100 {
		t.Fatalf("dims = (%d, %d), want (12, 100)", r, c)
	}
}

func TestSeedReproducible(t *testing.T) {
	for _, e := range []Ensemble{Gaussian, Bernoulli} {
		serial, _ := NewBuilder(WithSeed(99))
		parallel, _ := NewBuilder(WithSeed(99), WithWorkers(4))

		a, err := serial.Build(e, 33, 57)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		again, _ := serial.Build(e, 33, 57)
		c, err := parallel.Build(e, 33, 57)
		if err != nil {
			t.Fatalf("parallel Build() error = %v", err)
		}

		if !mat.Equal(a.Dense(), again.Dense()) {
			t.Fatalf("%s: same seed produced different matrices", e)
		}
		if !mat.Equal(a.Dense(), c.Dense()) {
			t.Fatalf("%s: worker count changed the matrix", e)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	b1, _ := NewBuilder(WithSeed(1))
	b2, _ := NewBuilder(WithSeed(2))
	a, _ := b1.Gaussian(4, 16)
	c, _ := b2.Gaussian(4, 16)
	if mat.Equal(a.Dense(), c.Dense()) {
		t.Fatal("different seeds produced identical matrices")
	}
}

func TestRowsAreIndependentStreams(t *testing.T) {
	b, _ := NewBuilder(WithSeed(5))
	phi, _ := b.Gaussian(2, 32)
	r0, r1 := phi.Row(0), phi.Row(1)
	same := true
	for j := range r0 {
		if r0[j] != r1[j] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("rows 0 and 1 are identical")
	}
}

func TestInvalidWorkers(t *testing.T) {
	if _, err := NewBuilder(WithWorkers(0)); err == nil {
		t.Fatal("expected error for zero workers")
	}
}
