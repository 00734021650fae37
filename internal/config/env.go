// Package config defines environment configuration structs and loaders.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	SimulationEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SimulationEnvConfig holds the simulation parameter defaults. CLI flags
// override these values.
type SimulationEnvConfig struct {
	NumBits        int     `env:"NUM_BITS" envDefault:"100000"`
	NumClassifiers int     `env:"NUM_CLASSIFIERS" envDefault:"3"`
	FlipRatio      float64 `env:"FLIP_RATIO" envDefault:"0.4"`
	CorrelatedFlip float64 `env:"FLIP" envDefault:"0.1"`
	RandomSeed     uint64  `env:"RANDOM_SEED" envDefault:"42"`
	Environment    string  `env:"ENVIRONMENT" envDefault:"prod"`
}

// Validate checks parameter ranges before a simulation run.
func (c *SimulationEnvConfig) Validate() error {
	if c.NumBits <= 0 {
		return fmt.Errorf("NUM_BITS must be positive, got %d", c.NumBits)
	}
	if c.NumClassifiers <= 0 {
		return fmt.Errorf("NUM_CLASSIFIERS must be positive, got %d", c.NumClassifiers)
	}
	if c.FlipRatio < 0 || c.FlipRatio > 1 {
		return fmt.Errorf("FLIP_RATIO must be in [0,1], got %v", c.FlipRatio)
	}
	if c.CorrelatedFlip < 0 || c.CorrelatedFlip > 1 {
		return fmt.Errorf("FLIP must be in [0,1], got %v", c.CorrelatedFlip)
	}
	return nil
}
