package fid

import (
	"errors"
	"fmt"
)

// Errors returned by FID loading and conversion.
var (
	ErrMissingData   = errors.New("fid: data file missing, unreadable or empty")
	ErrTruncatedData = errors.New("fid: data length is not a multiple of 4 bytes")
	ErrInvalidShift  = errors.New("fid: shift must be in [0, len(stream)]")
	ErrInvalidProcNo = errors.New("fid: processing number must be >= 0")
	ErrInvalidExpNo  = errors.New("fid: experiment number must be >= 0")
)

func validateShift(shift, n int) error {
	if shift < 0 || shift > n {
		return fmt.Errorf("%w: shift %d, stream length %d", ErrInvalidShift, shift, n)
	}
	return nil
}
