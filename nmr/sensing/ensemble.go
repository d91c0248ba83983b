package sensing

import (
	"fmt"
	"strings"
)

// Ensemble selects the distribution of sensing matrix entries.
type Ensemble int

const (
	// Gaussian entries are N(0, (1/M)²).
	Gaussian Ensemble = iota
	// Bernoulli entries are 0 or 1 with equal probability.
	Bernoulli
)

// String returns the lower-case ensemble name.
func (e Ensemble) String() string {
	switch e {
	case Gaussian:
		return "gaussian"
	case Bernoulli:
		return "bernoulli"
	default:
		return fmt.Sprintf("Ensemble(%d)", int(e))
	}
}

// Valid reports whether e is a known ensemble.
func (e Ensemble) Valid() bool {
	return e == Gaussian || e == Bernoulli
}

// ParseEnsemble maps a case-insensitive name to an Ensemble.
func ParseEnsemble(name string) (Ensemble, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gaussian", "normal":
		return Gaussian, nil
	case "bernoulli", "binary":
		return Bernoulli, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidEnsemble, name)
	}
}
