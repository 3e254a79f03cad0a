//go:build !linux

package voxact

// applyRlimits is a no-op where prlimit(2) is unavailable; the wall-clock
// timeout and output caps still bound the child.
func applyRlimits(_ int, _ *Config) error {
	return nil
}
