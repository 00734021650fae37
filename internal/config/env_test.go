package config

import (
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.NumBits != 100000 {
		t.Fatalf("NumBits default %d, want 100000", cfg.NumBits)
	}
	if cfg.NumClassifiers != 3 {
		t.Fatalf("NumClassifiers default %d, want 3", cfg.NumClassifiers)
	}
	if cfg.FlipRatio != 0.4 {
		t.Fatalf("FlipRatio default %v, want 0.4", cfg.FlipRatio)
	}
	if cfg.CorrelatedFlip != 0.1 {
		t.Fatalf("CorrelatedFlip default %v, want 0.1", cfg.CorrelatedFlip)
	}
	if cfg.RandomSeed != 42 {
		t.Fatalf("RandomSeed default %d, want 42", cfg.RandomSeed)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NUM_BITS", "5000")
	t.Setenv("FLIP_RATIO", "0.25")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.NumBits != 5000 {
		t.Fatalf("NumBits %d, want 5000", cfg.NumBits)
	}
	if cfg.FlipRatio != 0.25 {
		t.Fatalf("FlipRatio %v, want 0.25", cfg.FlipRatio)
	}
}

func TestValidate(t *testing.T) {
	valid := SimulationEnvConfig{NumBits: 100, NumClassifiers: 3, FlipRatio: 0.4, CorrelatedFlip: 0.1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := valid
	bad.NumBits = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("NumBits 0 accepted")
	}

	bad = valid
	bad.FlipRatio = 1.2
	if err := bad.Validate(); err == nil {
		t.Fatalf("FlipRatio 1.2 accepted")
	}

	bad = valid
	bad.CorrelatedFlip = -0.5
	if err := bad.Validate(); err == nil {
		t.Fatalf("CorrelatedFlip -0.5 accepted")
	}

	bad = valid
	bad.NumClassifiers = -1
	if err := bad.Validate(); err == nil {
		t.Fatalf("NumClassifiers -1 accepted")
	}
}
