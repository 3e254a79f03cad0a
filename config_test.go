package voxact

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if cfg.MaxMemoryMB != 512 {
		t.Errorf("MaxMemoryMB = %d, want 512", cfg.MaxMemoryMB)
	}
	if cfg.MaxOutputBytes != 100*1024 {
		t.Errorf("MaxOutputBytes = %d, want 102400", cfg.MaxOutputBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"zero memory", func(c *Config) { c.MaxMemoryMB = 0 }},
		{"negative memory", func(c *Config) { c.MaxMemoryMB = -1 }},
		{"zero output cap", func(c *Config) { c.MaxOutputBytes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrConfigInvalid) {
				t.Errorf("Validate() = %v, want ErrConfigInvalid", err)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = -time.Second
	if _, err := New(cfg); !errors.Is(err, ErrConfigInvalid) {
		t.Errorf("New() = %v, want ErrConfigInvalid", err)
	}
}

func TestNewDoesNotMutateCaller(t *testing.T) {
	withLookPath(t)

	cfg := DefaultConfig()
	ex, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkDir != "" {
		t.Errorf("New mutated the caller's WorkDir to %q", cfg.WorkDir)
	}
	if ex.cfg.WorkDir == "" {
		t.Error("executor work dir not defaulted")
	}
}
