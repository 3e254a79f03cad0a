package voxact

import "time"

// Backend identifies the isolation mechanism used to run scripts. The
// backend is selected once at Executor construction and never re-probed.
type Backend int

const (
	// BackendProcess is plain process spawning with OS-level resource
	// limits. It is the zero value so an unprobed value names the
	// always-available fallback rather than an isolation tool that may be
	// missing.
	BackendProcess Backend = iota

	// BackendBubblewrap isolates with bwrap: fully unshared namespaces and
	// read-only binds of only the directories an interpreter needs.
	BackendBubblewrap

	// BackendFirejail isolates with firejail: private home, tmp and dev,
	// no network, no device access.
	BackendFirejail
)

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case BackendProcess:
		return "process"
	case BackendBubblewrap:
		return "bubblewrap"
	case BackendFirejail:
		return "firejail"
	default:
		return unknownStr
	}
}

// Result holds the outcome of a single script execution.
type Result struct {
	// ID uniquely identifies this execution.
	ID string

	// Success reports whether the script ran and exited zero.
	Success bool

	// ExitCode is the process exit code. -1 is reserved for blocked,
	// timed-out and internally failed executions.
	ExitCode int

	// Stdout contains the captured standard output, truncated to the
	// configured output limit.
	Stdout string

	// Stderr contains the captured standard error, truncated independently
	// of Stdout.
	Stderr string

	// Duration is the wall-clock time the execution took.
	Duration time.Duration

	// Backend is the isolation backend the executor dispatched to.
	Backend Backend

	// Kind classifies the failure, if any.
	Kind ErrorKind

	// Detail carries the block reason or backend error text, when present.
	Detail string
}
