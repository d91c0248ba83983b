package sensing

import "fmt"

type config struct {
	seed    uint64
	seeded  bool
	workers int
}

func defaultConfig() config {
	return config{workers: 1}
}

// Option configures a [Builder].
type Option func(*config) error

// WithSeed makes matrix generation reproducible. Without a seed every build
// draws a fresh one from the global source.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		cfg.seeded = true

		return nil
	}
}

// WithWorkers sets how many rows are generated concurrently (default 1).
// The matrix for a given seed does not depend on this value.
func WithWorkers(workers int) Option {
	return func(cfg *config) error {
		if workers < 1 {
			return fmt.Errorf("sensing: workers must be >= 1: %d", workers)
		}

		cfg.workers = workers

		return nil
	}
}
