package voxact

import "errors"

// unknownStr is the string representation for unknown enum values.
const unknownStr = "unknown"

// Sentinel errors returned by the voxact package. Execution failures are
// never surfaced as Go errors: Execute reports them through Result fields so
// the voice-response layer can phrase a specific message per ErrorKind.
var (
	// ErrConfigInvalid indicates the provided configuration failed validation.
	ErrConfigInvalid = errors.New("voxact: invalid configuration")

	// ErrWorkDir indicates the work directory could not be created.
	ErrWorkDir = errors.New("voxact: cannot prepare work directory")
)

// ErrorKind classifies why an execution failed. KindNone means the script
// ran to completion, whatever its exit code.
type ErrorKind int

const (
	// KindNone is the zero value: no failure category applies.
	KindNone ErrorKind = iota

	// KindSafetyViolation marks a script rejected by the safety gate before
	// any process was spawned.
	KindSafetyViolation

	// KindTimeout marks a script killed for exceeding the wall-clock bound.
	KindTimeout

	// KindBackendFailure marks any OS or isolation-tool error during
	// materialization, spawn or wait.
	KindBackendFailure
)

// String returns the string representation of an ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSafetyViolation:
		return "safety-violation"
	case KindTimeout:
		return "timeout"
	case KindBackendFailure:
		return "backend-failure"
	default:
		return unknownStr
	}
}
