package fid

import (
	"encoding/binary"
	"fmt"
)

type config struct {
	shift     int
	order     binary.ByteOrder
	processed bool
}

func defaultConfig() config {
	return config{
		order:     binary.NativeEndian,
		processed: true,
	}
}

// Option configures loading of an experiment.
type Option func(*config) error

// WithShift sets the number of leading raw samples discarded before
// de-interleaving (default 0). The value depends on the spectrometer's
// digital filter and must be supplied by the caller.
func WithShift(shift int) Option {
	return func(cfg *config) error {
		if shift < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidShift, shift)
		}

		cfg.shift = shift

		return nil
	}
}

// WithByteOrder sets the byte order of the int32 data files (default: host order).
func WithByteOrder(order binary.ByteOrder) Option {
	return func(cfg *config) error {
		if order == nil {
			return fmt.Errorf("fid: byte order must not be nil")
		}

		cfg.order = order

		return nil
	}
}

// WithProcessed enables or disables loading of the processed spectrum in
// [Open] (default true).
func WithProcessed(enabled bool) Option {
	return func(cfg *config) error {
		cfg.processed = enabled
		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}
