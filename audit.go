package voxact

import (
	"sync"
	"time"
)

// AuditAction labels what the executor decided about a script.
type AuditAction string

const (
	// AuditBlocked records a script rejected by the safety gate.
	AuditBlocked AuditAction = "blocked"

	// AuditExecuted records a script dispatched to a backend, whatever the
	// outcome.
	AuditExecuted AuditAction = "executed"
)

const (
	// auditCapacity bounds the audit trail; the oldest entries are dropped
	// on overflow.
	auditCapacity = 100

	// previewLen is how much of a script an audit entry retains.
	previewLen = 100
)

// AuditEntry is one bounded log record of a safety decision or execution
// outcome.
type AuditEntry struct {
	// Time is when the decision was made.
	Time time.Time

	// Action is what was decided.
	Action AuditAction

	// ScriptPreview is the first previewLen bytes of the script.
	ScriptPreview string

	// Detail carries the block reason or the exit code.
	Detail string
}

// auditLog is a mutex-protected ring of the most recent audit entries.
// Execute may run from multiple goroutines; this is the only mutable state
// they share.
type auditLog struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (l *auditLog) append(action AuditAction, script, detail string) {
	e := AuditEntry{
		Time:          time.Now(),
		Action:        action,
		ScriptPreview: preview(script),
		Detail:        detail,
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	if len(l.entries) > auditCapacity {
		l.entries = l.entries[len(l.entries)-auditCapacity:]
	}
}

// snapshot returns a copy of the current entries, oldest first.
func (l *auditLog) snapshot() []AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func preview(script string) string {
	if len(script) <= previewLen {
		return script
	}
	return script[:previewLen]
}
