package voxact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/voxact/voxact/internal/metrics"
)

const (
	// defaultTimeout is the default wall-clock bound per execution.
	defaultTimeout = 30 * time.Second

	// defaultMaxMemoryMB is the default address-space cap for scripts.
	defaultMaxMemoryMB = 512

	// defaultMaxOutputBytes is the default limit for captured stdout and
	// stderr (100 KB each).
	defaultMaxOutputBytes = 100 * 1024
)

// Config configures an Executor. Use DefaultConfig for secure defaults.
type Config struct {
	// Timeout is the wall-clock bound for a single execution. Enforced on
	// every backend; it is the only cancellation mechanism.
	Timeout time.Duration

	// MaxMemoryMB caps the child's address space, in mebibytes.
	MaxMemoryMB int

	// MaxOutputBytes caps captured stdout and stderr, each independently.
	MaxOutputBytes int

	// WorkDir hosts per-call temp script files. It is created once at
	// construction and reused across calls; per-call files get unique
	// names, so concurrent executions do not collide. Empty selects a
	// directory under the OS temp dir.
	WorkDir string

	// Logger receives structured diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics, when non-nil, records execution outcomes.
	Metrics *metrics.Collector
}

// DefaultConfig returns secure defaults: 30s timeout, 512 MB memory,
// 100 KB output caps.
func DefaultConfig() *Config {
	return &Config{
		Timeout:        defaultTimeout,
		MaxMemoryMB:    defaultMaxMemoryMB,
		MaxOutputBytes: defaultMaxOutputBytes,
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: Timeout must be positive, got %s", ErrConfigInvalid, c.Timeout)
	}
	if c.MaxMemoryMB <= 0 {
		return fmt.Errorf("%w: MaxMemoryMB must be positive, got %d", ErrConfigInvalid, c.MaxMemoryMB)
	}
	if c.MaxOutputBytes <= 0 {
		return fmt.Errorf("%w: MaxOutputBytes must be positive, got %d", ErrConfigInvalid, c.MaxOutputBytes)
	}
	return nil
}

// defaultWorkDir returns the work directory used when none is configured.
func defaultWorkDir() string {
	return filepath.Join(os.TempDir(), "voxact-sandbox")
}
