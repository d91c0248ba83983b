package fid

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Dataset is a loaded 1D experiment: the phase-corrected complex FID and,
// when requested, the processed spectrum of one processing run.
type Dataset struct {
	Root   string
	ExpNo  int
	ProcNo int
	Shift  int

	// FID is the shifted, de-interleaved acquisition.
	FID []complex128
	// Processed is the vendor spectrum; nil when loading was disabled with
	// WithProcessed(false).
	Processed []int32
}

// Open loads experiment expNo below root. The raw FID is always read; the
// processed spectrum of procNo is read unless disabled by an option. Any
// failed read aborts Open and the error is returned unchanged in kind.
func Open(root string, expNo, procNo int, opts ...Option) (*Dataset, error) {
	if expNo < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExpNo, expNo)
	}
	if procNo < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProcNo, procNo)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Root:   root,
		ExpNo:  expNo,
		ProcNo: procNo,
		Shift:  cfg.shift,
	}

	raw, err := readInt32File(filepath.Join(ds.ExperimentDir(), rawFileName), cfg)
	if err != nil {
		return nil, err
	}

	ds.FID, err = ToComplex(raw, cfg.shift)
	if err != nil {
		return nil, err
	}

	if cfg.processed {
		ds.Processed, err = readInt32File(processedPath(ds.ExperimentDir(), procNo), cfg)
		if err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// ExperimentDir returns root/<expno>.
func (d *Dataset) ExperimentDir() string {
	return filepath.Join(d.Root, strconv.Itoa(d.ExpNo))
}

// ProcessingDir returns root/<expno>/pdata/<procno>.
func (d *Dataset) ProcessingDir() string {
	return filepath.Join(d.ExperimentDir(), processedDirName, strconv.Itoa(d.ProcNo))
}
