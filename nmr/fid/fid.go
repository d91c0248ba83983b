package fid

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	rawFileName       = "fid"
	processedFileName = "1r"
	processedDirName  = "pdata"
	bytesPerSample    = 4
)

// LoadRaw reads the raw acquisition file "fid" from expDir.
//
// The returned stream holds interleaved real/imaginary samples exactly as
// stored. A missing, unreadable or empty file yields [ErrMissingData]; a file
// whose length is not a whole number of int32 words yields [ErrTruncatedData].
func LoadRaw(expDir string, opts ...Option) ([]int32, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return readInt32File(filepath.Join(expDir, rawFileName), cfg)
}

// LoadProcessedSpectrum reads the vendor-processed real spectrum
// pdata/<procNo>/1r below expDir.
//
// Its length is independent of the raw FID. Failure semantics match [LoadRaw].
func LoadProcessedSpectrum(expDir string, procNo int, opts ...Option) ([]int32, error) {
	if procNo < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProcNo, procNo)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return readInt32File(processedPath(expDir, procNo), cfg)
}

// Shift drops the first shift samples of stream and appends the same number
// of zeros, so the result has the same length as the input. Dropped samples
// are not wrapped around to the tail.
func Shift(stream []int32, shift int) ([]int32, error) {
	if err := validateShift(shift, len(stream)); err != nil {
		return nil, err
	}

	out := make([]int32, len(stream))
	copy(out, stream[shift:])
	return out, nil
}

// ToComplex applies [Shift] and de-interleaves the result: even indices
// become real parts, odd indices imaginary parts. An unpaired final sample is
// discarded, so len(result) == len(stream)/2.
func ToComplex(stream []int32, shift int) ([]complex128, error) {
	shifted, err := Shift(stream, shift)
	if err != nil {
		return nil, err
	}
	return Deinterleave(shifted), nil
}

// Deinterleave pairs consecutive samples into complex values without any
// shift. An odd trailing sample is dropped.
func Deinterleave(stream []int32) []complex128 {
	out := make([]complex128, len(stream)/2)
	for i := range out {
		out[i] = complex(float64(stream[2*i]), float64(stream[2*i+1]))
	}
	return out
}

// Interleave builds a raw stream from separate real and imaginary parts.
func Interleave(re, im []int32) ([]int32, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("fid: interleave length mismatch: %d != %d", len(re), len(im))
	}
	out := make([]int32, 2*len(re))
	for i := range re {
		out[2*i] = re[i]
		out[2*i+1] = im[i]
	}
	return out, nil
}

func processedPath(expDir string, procNo int) string {
	return filepath.Join(expDir, processedDirName, strconv.Itoa(procNo), processedFileName)
}

func readInt32File(path string, cfg config) ([]int32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingData, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingData, path)
	}
	if len(data)%bytesPerSample != 0 {
		return nil, fmt.Errorf("%w: %s has %d bytes", ErrTruncatedData, path, len(data))
	}

	out := make([]int32, len(data)/bytesPerSample)
	for i := range out {
		out[i] = int32(cfg.order.Uint32(data[i*bytesPerSample:]))
	}
	return out, nil
}
