package voxact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/voxact/voxact/internal/metrics"
)

// Executor runs untrusted scripts under the strongest isolation mechanism
// available on the host, bounded by memory, CPU time, wall clock and output
// size, and keeps a bounded audit trail of every decision.
//
// An Executor is safe for concurrent use: each Execute call owns exactly
// one child process for its duration, per-call script files get unique
// names, and the audit log is the only shared mutable state.
type Executor struct {
	cfg     Config
	backend Backend
	rules   []blockRule
	audit   auditLog
	logger  *slog.Logger
	metrics *metrics.Collector
}

// New creates an Executor. It validates the configuration, creates the work
// directory, and probes the host for isolation tools exactly once; the
// chosen backend is fixed for the Executor's lifetime. Missing isolation
// tools are not an error: execution downgrades, with a warning, to plain
// process limits.
func New(cfg *Config) (*Executor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Work on a copy so the caller's Config is never mutated.
	cfgCopy := *cfg
	if cfgCopy.WorkDir == "" {
		cfgCopy.WorkDir = defaultWorkDir()
	}
	if err := os.MkdirAll(cfgCopy.WorkDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkDir, err)
	}

	logger := cfgCopy.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend := detectBackend()
	if backend == BackendProcess {
		logger.Warn("no isolation tool found, falling back to plain process limits")
	}
	logger.Info("sandbox executor ready",
		"backend", backend.String(),
		"work_dir", cfgCopy.WorkDir)

	return &Executor{
		cfg:     cfgCopy,
		backend: backend,
		rules:   safetyRules(),
		logger:  logger,
		metrics: cfgCopy.Metrics,
	}, nil
}

// Backend reports the isolation backend selected at construction.
func (e *Executor) Backend() Backend {
	return e.backend
}

// Execute runs script under the active backend. It blocks until the process
// exits or the configured timeout fires, whichever comes first.
//
// Execute never returns a Go error: blocked, timed-out and failed runs are
// all reported through the Result's Kind, ExitCode and Detail fields, so
// the caller can phrase a specific response for each. The temp script file
// is removed on every exit path.
func (e *Executor) Execute(ctx context.Context, script, language string, opts ...Option) *Result {
	co := mergeCallOptions(opts...)
	start := time.Now()
	res := &Result{ID: uuid.NewString(), ExitCode: -1, Backend: e.backend}

	if ok, reason := e.IsSafe(script); !ok {
		e.logger.Warn("blocked unsafe script", "reason", reason)
		e.audit.append(AuditBlocked, script, reason)
		e.metrics.ObserveBlocked()
		res.Kind = KindSafetyViolation
		res.Detail = reason
		res.Stderr = "script blocked for safety: " + reason
		res.Duration = time.Since(start)
		return res
	}

	spec := lookupLanguage(language)
	scriptPath, err := materializeScript(e.cfg.WorkDir, script, spec)
	if err != nil {
		res.Kind = KindBackendFailure
		res.Detail = err.Error()
		res.Stderr = err.Error()
		res.Duration = time.Since(start)
		e.finish(res, script)
		return res
	}
	defer os.Remove(scriptPath)

	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	argv := e.buildArgv(spec, scriptPath)
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = e.cfg.WorkDir
	if co.workingDir != "" {
		cmd.Dir = co.workingDir
	}
	cmd.Env = append(os.Environ(), co.env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitedWriter{buf: &stdout, limit: e.cfg.MaxOutputBytes}
	cmd.Stderr = &limitedWriter{buf: &stderr, limit: e.cfg.MaxOutputBytes}

	setupProcessGroup(cmd)

	e.logger.Debug("dispatching script",
		"id", res.ID,
		"language", language,
		"backend", e.backend.String(),
		"script_bytes", len(script))

	if err := cmd.Start(); err != nil {
		res.Kind = KindBackendFailure
		res.Detail = err.Error()
		res.Stderr = err.Error()
		res.Duration = time.Since(start)
		e.finish(res, script)
		return res
	}

	if e.backend == BackendProcess {
		if err := applyRlimits(cmd.Process.Pid, &e.cfg); err != nil {
			e.logger.Warn("resource limit application failed", "error", err)
		}
	}

	waitErr := cmd.Wait()
	res.Duration = time.Since(start)

	if runCtx.Err() == context.DeadlineExceeded {
		res.Kind = KindTimeout
		res.Detail = fmt.Sprintf("timeout after %s", e.cfg.Timeout)
		res.Stderr = fmt.Sprintf("script timed out after %s", e.cfg.Timeout)
		e.finish(res, script)
		return res
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			res.Kind = KindBackendFailure
			res.Detail = waitErr.Error()
			res.Stdout = stdout.String()
			res.Stderr = waitErr.Error()
			e.finish(res, script)
			return res
		}
		res.ExitCode = exitErr.ExitCode()
	} else {
		res.ExitCode = 0
	}

	res.Success = res.ExitCode == 0
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	e.finish(res, script)
	return res
}

// finish records the single per-dispatch audit entry and observes metrics.
// Only the safety-gate block path skips it.
func (e *Executor) finish(res *Result, script string) {
	e.audit.append(AuditExecuted, script, fmt.Sprintf("exit_code=%d", res.ExitCode))
	e.metrics.ObserveExecution(res.Backend.String(), res.Kind.String(), res.Duration)
}

// AuditLog returns a copy of the most recent audit entries, oldest first.
// At most the last 100 entries are retained.
func (e *Executor) AuditLog() []AuditEntry {
	return e.audit.snapshot()
}

// Cleanup removes every file currently in the work directory. It is best
// effort: failures are logged, not returned.
func (e *Executor) Cleanup() {
	entries, err := os.ReadDir(e.cfg.WorkDir)
	if err != nil {
		e.logger.Warn("cleanup failed", "error", err)
		return
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(e.cfg.WorkDir, ent.Name())); err != nil {
			e.logger.Warn("cleanup failed", "path", ent.Name(), "error", err)
		}
	}
}

// Run is a convenience function that creates a temporary Executor with the
// default configuration, executes the script, and cleans up.
func Run(ctx context.Context, script, language string, opts ...Option) (*Result, error) {
	ex, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	defer ex.Cleanup()
	return ex.Execute(ctx, script, language, opts...), nil
}

// limitedWriter wraps a bytes.Buffer and stops writing after limit bytes.
type limitedWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		return len(p), nil // discard but report success
	}
	if len(p) <= remaining {
		return w.buf.Write(p)
	}
	// Write only what fits, but report full length to avoid io.ErrShortWrite.
	if _, err := w.buf.Write(p[:remaining]); err != nil {
		return 0, err
	}
	return len(p), nil
}
