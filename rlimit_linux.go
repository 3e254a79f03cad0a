//go:build linux

package voxact

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuGraceSeconds is added to the CPU-time limit beyond the wall clock so a
// compute-bound script is killed by the wall-clock timeout first and the
// CPU limit only catches runaways that fork past it.
const cpuGraceSeconds = 5

// applyRlimits bounds an already-started child of the process backend:
// address space capped at MaxMemoryMB, CPU time at Timeout plus grace, and
// core dumps disabled. Limits land via prlimit(2) immediately after Start,
// so the unbounded window is a few scheduler ticks at most.
func applyRlimits(pid int, cfg *Config) error {
	as := uint64(cfg.MaxMemoryMB) * 1024 * 1024
	cpu := uint64(cfg.Timeout/time.Second) + cpuGraceSeconds

	limits := []struct {
		resource int
		limit    unix.Rlimit
	}{
		{unix.RLIMIT_AS, unix.Rlimit{Cur: as, Max: as}},
		{unix.RLIMIT_CPU, unix.Rlimit{Cur: cpu, Max: cpu}},
		{unix.RLIMIT_CORE, unix.Rlimit{Cur: 0, Max: 0}},
	}
	for _, l := range limits {
		if err := unix.Prlimit(pid, l.resource, &l.limit, nil); err != nil {
			return err
		}
	}
	return nil
}
