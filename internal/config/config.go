// Package config loads run configuration for the csfid commands from an
// optional YAML file and CSFID_* environment variables.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/cwbudde/algo-nmr/nmr/experiment"
	"github.com/cwbudde/algo-nmr/nmr/sensing"
)

// EnvPrefix is the prefix of all environment variables, e.g.
// CSFID_EXPERIMENT_ROOT or CSFID_SENSING_SPARSITY.
const EnvPrefix = "CSFID"

// Measurement targets.
const (
	TargetProcessed = "processed"
	TargetFID       = "fid"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Experiment ExperimentConfig `yaml:"experiment" envconfig:"EXPERIMENT"`
	Sensing    SensingConfig    `yaml:"sensing" envconfig:"SENSING"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
}

// ExperimentConfig locates the data. Root/<ExpNo>/fid is the raw FID and
// Root/<ExpNo>/pdata/<ProcNo>/1r the processed spectrum.
type ExperimentConfig struct {
	Root      string `yaml:"root" envconfig:"ROOT"`
	ExpNo     int    `yaml:"expno" envconfig:"EXPNO"`
	ProcNo    int    `yaml:"procno" envconfig:"PROCNO"`
	Shift     int    `yaml:"shift" envconfig:"SHIFT"`
	ByteOrder string `yaml:"byte_order" envconfig:"BYTE_ORDER"`
}

// SensingConfig selects the sensing matrix and what it measures.
type SensingConfig struct {
	Sparsity float64 `yaml:"sparsity" envconfig:"SPARSITY"`
	Ensemble string  `yaml:"ensemble" envconfig:"ENSEMBLE"`
	Target   string  `yaml:"target" envconfig:"TARGET"`
	// Seed 0 draws a fresh seed for every run.
	Seed    uint64 `yaml:"seed" envconfig:"SEED"`
	Workers int    `yaml:"workers" envconfig:"WORKERS"`
	// Components is the expected number of non-zero frequencies, used only
	// to report the measurement bound. 0 disables the report.
	Components int `yaml:"components" envconfig:"COMPONENTS"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Experiment: ExperimentConfig{
			ExpNo:     1,
			ProcNo:    1,
			ByteOrder: "native",
		},
		Sensing: SensingConfig{
			Sparsity: 0.125,
			Ensemble: sensing.Gaussian.String(),
			Target:   TargetProcessed,
			Workers:  1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Override mutates a loaded configuration, e.g. from command-line flags.
type Override func(*Config)

// Load starts from [Default], applies the YAML file at path (skipped when
// path is empty), then environment variables, then overrides, and validates
// the result. Later sources take precedence.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load from env: %w", err)
	}

	for _, o := range overrides {
		if o != nil {
			o(&cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate checks all fields.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Experiment.Root) == "":
		return fmt.Errorf("%w: experiment root is required", ErrInvalid)
	case c.Experiment.ExpNo < 0:
		return fmt.Errorf("%w: expno must be >= 0: %d", ErrInvalid, c.Experiment.ExpNo)
	case c.Experiment.ProcNo < 0:
		return fmt.Errorf("%w: procno must be >= 0: %d", ErrInvalid, c.Experiment.ProcNo)
	case c.Experiment.Shift < 0:
		return fmt.Errorf("%w: shift must be >= 0: %d", ErrInvalid, c.Experiment.Shift)
	case c.Sensing.Sparsity <= 0 || c.Sensing.Sparsity > 1:
		return fmt.Errorf("%w: sparsity must be in (0, 1]: %g", ErrInvalid, c.Sensing.Sparsity)
	case c.Sensing.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1: %d", ErrInvalid, c.Sensing.Workers)
	case c.Sensing.Components < 0:
		return fmt.Errorf("%w: components must be >= 0: %d", ErrInvalid, c.Sensing.Components)
	}

	if _, err := c.EnsembleValue(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.ByteOrderValue(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch c.Sensing.Target {
	case TargetProcessed, TargetFID:
	default:
		return fmt.Errorf("%w: target must be %q or %q: %q", ErrInvalid, TargetProcessed, TargetFID, c.Sensing.Target)
	}

	return nil
}

// EnsembleValue parses Sensing.Ensemble.
func (c *Config) EnsembleValue() (sensing.Ensemble, error) {
	return sensing.ParseEnsemble(c.Sensing.Ensemble)
}

// ByteOrderValue parses Experiment.ByteOrder ("native", "little", "big").
func (c *Config) ByteOrderValue() (binary.ByteOrder, error) {
	switch strings.ToLower(c.Experiment.ByteOrder) {
	case "", "native":
		return binary.NativeEndian, nil
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", c.Experiment.ByteOrder)
	}
}

// Params converts a validated configuration into experiment parameters.
func (c *Config) Params() (experiment.Params, error) {
	ensemble, err := c.EnsembleValue()
	if err != nil {
		return experiment.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	order, err := c.ByteOrderValue()
	if err != nil {
		return experiment.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	target := experiment.TargetProcessed
	if c.Sensing.Target == TargetFID {
		target = experiment.TargetFID
	}

	return experiment.Params{
		Root:       c.Experiment.Root,
		ExpNo:      c.Experiment.ExpNo,
		ProcNo:     c.Experiment.ProcNo,
		Shift:      c.Experiment.Shift,
		ByteOrder:  order,
		Target:     target,
		Ensemble:   ensemble,
		Sparsity:   c.Sensing.Sparsity,
		Seed:       c.Sensing.Seed,
		Workers:    c.Sensing.Workers,
		Components: c.Sensing.Components,
	}, nil
}
