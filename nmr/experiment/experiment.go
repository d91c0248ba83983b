// Package experiment wires FID loading and compressed-sensing measurement
// into a single run: load a dataset, size and build the sensing matrix for
// the chosen target and project the target through it.
package experiment

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-nmr/nmr/fid"
	"github.com/cwbudde/algo-nmr/nmr/sensing"
)

// Target selects which array of the dataset is measured.
type Target int

const (
	// TargetProcessed measures the vendor-processed spectrum.
	TargetProcessed Target = iota
	// TargetFID measures the complex FID.
	TargetFID
)

func (t Target) String() string {
	switch t {
	case TargetProcessed:
		return "processed"
	case TargetFID:
		return "fid"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ErrInvalidTarget is returned for an unknown Target.
var ErrInvalidTarget = errors.New("experiment: unknown measurement target")

// Params describes one run.
type Params struct {
	Root      string
	ExpNo     int
	ProcNo    int
	Shift     int
	ByteOrder binary.ByteOrder // nil means host order

	Target   Target
	Ensemble sensing.Ensemble
	Sparsity float64
	Seed     uint64 // 0 draws a fresh seed
	Workers  int    // <= 1 generates rows serially

	// Components, when > 0, is the expected number of non-zero frequencies
	// used to evaluate the advisory measurement bound.
	Components int

	// LoadProcessed loads the processed spectrum even when it is not the
	// measurement target.
	LoadProcessed bool
}

// Result holds everything a run produced.
type Result struct {
	Dataset *fid.Dataset
	Matrix  *sensing.Matrix
	Target  Target

	// Measured is set for TargetProcessed, MeasuredComplex for TargetFID.
	Measured        []float64
	MeasuredComplex []complex128

	// Bound and BoundMet are only meaningful when Params.Components > 0.
	Bound    float64
	BoundMet bool
}

// Runner executes runs and logs stage boundaries.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger.Named("experiment")}
}

// Run loads the dataset, builds the matrix and measures the target. The
// context is checked between stages.
func (r *Runner) Run(ctx context.Context, p Params) (*Result, error) {
	if p.Target != TargetProcessed && p.Target != TargetFID {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, int(p.Target))
	}

	log := r.logger.With(
		zap.String("root", p.Root),
		zap.Int("expno", p.ExpNo),
		zap.Int("procno", p.ProcNo),
	)

	ds, err := r.load(p)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return nil, err
	}
	log.Info("dataset loaded",
		zap.Int("shift", p.Shift),
		zap.Int("fid_points", len(ds.FID)),
		zap.Int("processed_points", len(ds.Processed)),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(ds.FID)
	if p.Target == TargetProcessed {
		n = len(ds.Processed)
	}

	m, err := sensing.MeasurementCount(n, p.Sparsity)
	if err != nil {
		log.Error("measurement count", zap.Int("n", n), zap.Float64("sparsity", p.Sparsity), zap.Error(err))
		return nil, err
	}

	res := &Result{Dataset: ds, Target: p.Target}

	if p.Components > 0 {
		res.Bound, err = sensing.MeasurementBound(n, p.Components)
		if err != nil {
			return nil, err
		}
		res.BoundMet = float64(m) >= res.Bound
		if !res.BoundMet {
			log.Warn("measurement count below bound",
				zap.Int("m", m),
				zap.Float64("bound", res.Bound),
				zap.Int("components", p.Components),
			)
		}
	}

	opts := []sensing.Option{}
	if p.Seed != 0 {
		opts = append(opts, sensing.WithSeed(p.Seed))
	}
	if p.Workers > 1 {
		opts = append(opts, sensing.WithWorkers(p.Workers))
	}
	builder, err := sensing.NewBuilder(opts...)
	if err != nil {
		return nil, err
	}

	res.Matrix, err = builder.Build(p.Ensemble, m, n)
	if err != nil {
		log.Error("build matrix", zap.Error(err))
		return nil, err
	}
	log.Info("sensing matrix built",
		zap.Stringer("ensemble", p.Ensemble),
		zap.Int("m", m),
		zap.Int("n", n),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch p.Target {
	case TargetProcessed:
		res.Measured, err = res.Matrix.MeasureInt32(ds.Processed)
	case TargetFID:
		res.MeasuredComplex, err = res.Matrix.MeasureComplex(ds.FID)
	}
	if err != nil {
		log.Error("measure", zap.Error(err))
		return nil, err
	}
	log.Info("target measured", zap.Stringer("target", p.Target), zap.Int("measurements", m))

	return res, nil
}

func (r *Runner) load(p Params) (*fid.Dataset, error) {
	opts := []fid.Option{
		fid.WithShift(p.Shift),
		fid.WithProcessed(p.Target == TargetProcessed || p.LoadProcessed),
	}
	if p.ByteOrder != nil {
		opts = append(opts, fid.WithByteOrder(p.ByteOrder))
	}
	return fid.Open(p.Root, p.ExpNo, p.ProcNo, opts...)
}
