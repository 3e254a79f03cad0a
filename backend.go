package voxact

import (
	"fmt"
	"os"
	"os/exec"
	"time"
)

// lookPathFn resolves isolation binaries at construction time. It defaults
// to exec.LookPath and can be overridden in tests.
var lookPathFn = exec.LookPath

// detectBackend probes for isolation tools in preference order: firejail,
// then bwrap, then plain process limits. Probing happens exactly once, at
// Executor construction; the result is stored as an immutable field.
func detectBackend() Backend {
	if _, err := lookPathFn("firejail"); err == nil {
		return BackendFirejail
	}
	if _, err := lookPathFn("bwrap"); err == nil {
		return BackendBubblewrap
	}
	return BackendProcess
}

// buildArgv constructs the full invocation for the active backend. Each
// backend has one pure argv builder; no backend state is consulted beyond
// the tag chosen at construction.
func (e *Executor) buildArgv(spec languageSpec, scriptPath string) []string {
	switch e.backend {
	case BackendFirejail:
		return firejailArgs(spec.interpreter, scriptPath, &e.cfg)
	case BackendBubblewrap:
		return bwrapArgs(spec.interpreter, scriptPath, &e.cfg)
	default:
		return processArgs(spec.interpreter, scriptPath)
	}
}

// firejailArgs wraps the interpreter with private home/tmp/dev namespaces,
// no network, no audio/3D/optical device access, dropped supplementary
// groups, an address-space cap, and the timeout handed to firejail itself.
func firejailArgs(interpreter, scriptPath string, cfg *Config) []string {
	return []string{
		"firejail",
		"--quiet",
		"--private",
		"--private-tmp",
		"--private-dev",
		"--net=none",
		"--nogroups",
		"--nosound",
		"--no3d",
		"--nodvd",
		fmt.Sprintf("--rlimit-as=%d", int64(cfg.MaxMemoryMB)*1024*1024),
		"--timeout=" + firejailTimeout(cfg.Timeout),
		interpreter, scriptPath,
	}
}

// firejailTimeout renders a duration in firejail's hh:mm:ss form, rounding
// up to at least one second.
func firejailTimeout(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// bwrapArgs wraps the interpreter with fully unshared namespaces, read-only
// binds of only the OS directories needed to run an interpreter, a private
// tmp, and die-with-parent semantics. The work directory is bound at its
// host path so the script file resolves inside the sandbox.
func bwrapArgs(interpreter, scriptPath string, cfg *Config) []string {
	args := []string{
		"bwrap",
		"--unshare-all",
		"--die-with-parent",
		"--ro-bind", "/usr", "/usr",
		"--ro-bind", "/bin", "/bin",
		"--ro-bind", "/lib", "/lib",
	}
	if _, err := os.Stat("/lib64"); err == nil {
		args = append(args, "--ro-bind", "/lib64", "/lib64")
	}
	args = append(args,
		"--proc", "/proc",
		"--dev", "/dev",
		"--tmpfs", "/tmp",
		"--bind", cfg.WorkDir, cfg.WorkDir,
		"--chdir", cfg.WorkDir,
		interpreter, scriptPath,
	)
	return args
}

// processArgs spawns the interpreter directly. Resource limits for this
// backend are applied to the child right after start; see applyRlimits.
func processArgs(interpreter, scriptPath string) []string {
	return []string{interpreter, scriptPath}
}
