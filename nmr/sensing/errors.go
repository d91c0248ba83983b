package sensing

import "errors"

// Errors returned by sensing functions.
var (
	ErrInvalidSparsity       = errors.New("sensing: n must be > 0 and sparsity in (0, 1]")
	ErrDegenerateMeasurement = errors.New("sensing: measurement count is zero")
	ErrInvalidDimension      = errors.New("sensing: matrix dimensions must be > 0")
	ErrDimensionMismatch     = errors.New("sensing: vector length does not match matrix columns")
	ErrInvalidEnsemble       = errors.New("sensing: unknown ensemble")
	ErrInvalidBound          = errors.New("sensing: bound requires 0 < k <= n")
)
