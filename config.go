package balltree

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls random point generation for the balltree command.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// N is the number of points to sample. Must be >= 1. Default: 21.
	N int `yaml:"n"`

	// D is the dimension of every point. Must be >= 1. Default: 100.
	D int `yaml:"d"`

	// Low and High bound the uniform distribution coordinates are drawn
	// from. Must be finite with Low <= High. Default: [-10, 10].
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`

	// Seed seeds the PCG source. 0 seeds from the current time.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns a Config with the default sample shape.
func DefaultConfig() Config {
	return Config{
		N:    21,
		D:    100,
		Low:  -10,
		High: 10,
	}
}

// Validate checks that cfg fields are valid and returns a descriptive error
// wrapping ErrInvalidConfig if not.
func (cfg Config) Validate() error {
	if cfg.N < 1 {
		return fmt.Errorf("%w: N must be >= 1, got %d", ErrInvalidConfig, cfg.N)
	}
	if cfg.D < 1 {
		return fmt.Errorf("%w: D must be >= 1, got %d", ErrInvalidConfig, cfg.D)
	}
	return validateBounds(cfg.Low, cfg.High)
}

// Source returns the random source described by Seed.
func (cfg Config) Source() rand.Source {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed)
}

// Points validates cfg and samples its point set.
func (cfg Config) Points() ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return GeneratePoints(cfg.N, cfg.D, cfg.Low, cfg.High, cfg.Source())
}

// LoadConfig reads a YAML file over DefaultConfig. Fields absent from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("balltree: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("balltree: parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
