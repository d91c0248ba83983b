package sensing

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Builder creates sensing matrices. A Builder holds only configuration and
// is safe for concurrent use.
type Builder struct {
	cfg config
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Builder{cfg: cfg}, nil
}

// NewGaussian builds an m×n Gaussian matrix with an unseeded default Builder.
func NewGaussian(m, n int) (*Matrix, error) {
	return (&Builder{cfg: defaultConfig()}).Gaussian(m, n)
}

// NewBernoulli builds an m×n Bernoulli matrix with an unseeded default Builder.
func NewBernoulli(m, n int) (*Matrix, error) {
	return (&Builder{cfg: defaultConfig()}).Bernoulli(m, n)
}

// Build creates an m×n matrix from the given ensemble.
func (b *Builder) Build(e Ensemble, m, n int) (*Matrix, error) {
	switch e {
	case Gaussian:
		return b.Gaussian(m, n)
	case Bernoulli:
		return b.Bernoulli(m, n)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidEnsemble, int(e))
	}
}

// ForTarget sizes a matrix for a target of length n at the given sparsity
// and builds it. Errors from [MeasurementCount] are returned unchanged.
func (b *Builder) ForTarget(e Ensemble, n int, sparsity float64) (*Matrix, error) {
	m, err := MeasurementCount(n, sparsity)
	if err != nil {
		return nil, err
	}
	return b.Build(e, m, n)
}

// Gaussian returns an m×n matrix of i.i.d. normal entries with mean 0 and
// standard deviation 1/m.
func (b *Builder) Gaussian(m, n int) (*Matrix, error) {
	if err := validateDims(m, n); err != nil {
		return nil, err
	}

	scale := 1 / float64(m)
	fill := func(row []float64, rng *rand.Rand) {
		draw := make([]float64, len(row))
		for j := range draw {
			draw[j] = rng.NormFloat64()
		}
		vecmath.ScaleBlock(row, draw, scale)
	}

	return b.generate(Gaussian, m, n, fill)
}

// Bernoulli returns an m×n matrix of i.i.d. entries drawn from {0, 1} with
// p = 0.5.
func (b *Builder) Bernoulli(m, n int) (*Matrix, error) {
	if err := validateDims(m, n); err != nil {
		return nil, err
	}

	fill := func(row []float64, rng *rand.Rand) {
		for j := range row {
			row[j] = float64(rng.Uint64() & 1)
		}
	}

	return b.generate(Bernoulli, m, n, fill)
}

// generate fills the matrix row by row. Row i uses its own PCG stream keyed
// by (seed, i), so concurrent generation is deterministic for a fixed seed.
func (b *Builder) generate(e Ensemble, m, n int, fill func([]float64, *rand.Rand)) (*Matrix, error) {
	seed := b.cfg.seed
	if !b.cfg.seeded {
		seed = rand.Uint64()
	}

	data := make([]float64, m*n)
	fillRow := func(i int) {
		rng := rand.New(rand.NewPCG(seed, uint64(i)))
		fill(data[i*n:(i+1)*n], rng)
	}

	if b.cfg.workers <= 1 || m == 1 {
		for i := range m {
			fillRow(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(b.cfg.workers)
		for i := range m {
			g.Go(func() error {
				fillRow(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &Matrix{dense: mat.NewDense(m, n, data), ensemble: e}, nil
}

func validateDims(m, n int) error {
	if m <= 0 || n <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, m, n)
	}
	return nil
}
