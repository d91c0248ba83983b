package sensing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable M×N sensing matrix.
type Matrix struct {
	dense    *mat.Dense
	ensemble Ensemble
}

// Rows returns M, the number of measurements produced per target.
func (m *Matrix) Rows() int {
	r, _ := m.dense.Dims()
	return r
}

// Cols returns N, the required target length.
func (m *Matrix) Cols() int {
	_, c := m.dense.Dims()
	return c
}

// Dims returns (M, N).
func (m *Matrix) Dims() (rows, cols int) {
	return m.dense.Dims()
}

// Ensemble returns the distribution the entries were drawn from.
func (m *Matrix) Ensemble() Ensemble {
	return m.ensemble
}

// At returns the entry at row i, column j. It panics if out of range.
func (m *Matrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.dense)
}

// Dense returns a copy of the matrix as a gonum dense matrix.
func (m *Matrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(m.dense)
}

// Measure returns Φx. len(x) must equal Cols().
func (m *Matrix) Measure(x []float64) ([]float64, error) {
	rows, cols := m.dense.Dims()
	if len(x) != cols {
		return nil, fmt.Errorf("%w: matrix has %d columns, vector has %d elements", ErrDimensionMismatch, cols, len(x))
	}

	out := make([]float64, rows)
	y := mat.NewVecDense(rows, out)
	y.MulVec(m.dense, mat.NewVecDense(cols, x))
	return out, nil
}

// MeasureComplex returns Φx for a complex target. Φ is real, so the real
// and imaginary parts are projected independently.
func (m *Matrix) MeasureComplex(x []complex128) ([]complex128, error) {
	cols := m.Cols()
	if len(x) != cols {
		return nil, fmt.Errorf("%w: matrix has %d columns, vector has %d elements", ErrDimensionMismatch, cols, len(x))
	}

	re := make([]float64, cols)
	im := make([]float64, cols)
	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}

	yr, err := m.Measure(re)
	if err != nil {
		return nil, err
	}
	yi, err := m.Measure(im)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(yr))
	for i := range out {
		out[i] = complex(yr[i], yi[i])
	}
	return out, nil
}

// MeasureInt32 converts an integer target such as a processed spectrum and
// measures it.
func (m *Matrix) MeasureInt32(x []int32) ([]float64, error) {
	f := make([]float64, len(x))
	for i, v := range x {
		f[i] = float64(v)
	}
	return m.Measure(f)
}
