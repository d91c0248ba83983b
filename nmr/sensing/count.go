package sensing

import (
	"fmt"
	"math"
)

// BoundConstant is the constant C of the measurement bound M ≥ C·k·log10(N/k).
const BoundConstant = 0.28

// MeasurementCount returns floor(n*sparsity).
//
// n must be positive and sparsity in (0, 1], otherwise [ErrInvalidSparsity]
// is returned. When the product is below one the count is 0 and
// [ErrDegenerateMeasurement] is returned. The measurement bound is not
// enforced; see [MeasurementBound].
func MeasurementCount(n int, sparsity float64) (int, error) {
	if n <= 0 || math.IsNaN(sparsity) || sparsity <= 0 || sparsity > 1 {
		return 0, fmt.Errorf("%w: n=%d sparsity=%g", ErrInvalidSparsity, n, sparsity)
	}

	m := int(math.Floor(float64(n) * sparsity))
	if m == 0 {
		return 0, fmt.Errorf("%w: n=%d sparsity=%g", ErrDegenerateMeasurement, n, sparsity)
	}

	return m, nil
}

// MeasurementBound returns C·k·log10(n/k), the suggested minimum number of
// measurements for a signal of length n with k non-zero frequency components.
func MeasurementBound(n, k int) (float64, error) {
	if n <= 0 || k <= 0 || k > n {
		return 0, fmt.Errorf("%w: n=%d k=%d", ErrInvalidBound, n, k)
	}
	return BoundConstant * float64(k) * math.Log10(float64(n)/float64(k)), nil
}

// SatisfiesBound reports whether m measurements meet [MeasurementBound] for
// the given n and k. It is advisory and never called by the builders.
func SatisfiesBound(m, n, k int) (bool, error) {
	bound, err := MeasurementBound(n, k)
	if err != nil {
		return false, err
	}
	return float64(m) >= bound, nil
}

// MinSparsity returns the smallest sparsity fraction whose measurement count
// satisfies the bound for n and k.
func MinSparsity(n, k int) (float64, error) {
	bound, err := MeasurementBound(n, k)
	if err != nil {
		return 0, err
	}
	m := math.Max(1, math.Ceil(bound))
	s := math.Min(1, m/float64(n))
	// m/n can round just below the value whose floor(n*s) reaches m.
	for s < 1 && math.Floor(float64(n)*s) < m {
		s = math.Nextafter(s, 2)
	}
	return s, nil
}
