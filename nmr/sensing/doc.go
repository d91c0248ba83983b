// Package sensing builds random sensing matrices for compressed-sensing
// experiments and applies them to target signals.
//
// In the compressed-sensing model y = Φx, x is the length-N target (a FID or
// a processed spectrum), Φ is an M×N random matrix and y the M simulated
// measurements. M is derived from N and a sparsity fraction:
//
//	m, err := sensing.MeasurementCount(len(x), 0.125)
//	phi, err := sensing.NewGaussian(m, len(x))
//	y, err := phi.Measure(x)
//
// Two ensembles are available. [Gaussian] draws N(0, σ²) entries with
// σ = 1/M, which keeps the measured energy roughly independent of M.
// [Bernoulli] draws entries from {0, 1} with p = 0.5. Which ensemble to use
// is a caller decision; nothing in this package chooses one.
//
// # Measurement bound
//
// Recovery of a k-sparse signal needs roughly M ≥ C·k·log10(N/k) with
// C ≈ 0.28 ([MeasurementBound]). The bound is guidance for choosing the
// sparsity fraction only: [MeasurementCount] and the builders never check it.
//
// A zero-row matrix cannot be built. [MeasurementCount] reports
// [ErrDegenerateMeasurement] when N·sparsity < 1 and the builders reject
// m <= 0 with [ErrInvalidDimension].
package sensing
