//go:build !(darwin || linux)

package voxact

import "os/exec"

// setupProcessGroup is a no-op on platforms without Unix process groups;
// the context cancellation installed by exec.CommandContext still kills the
// direct child on timeout.
func setupProcessGroup(_ *exec.Cmd) {}
