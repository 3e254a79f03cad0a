//go:build darwin || linux

package voxact

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// killWaitDelay is how long to wait for a killed process group to release
// its stdout/stderr pipes before giving up on the reads.
const killWaitDelay = 3 * time.Second

// setupProcessGroup runs the script in its own session and installs a
// Cancel function that kills the entire group when the deadline fires.
// Setsid (rather than Setpgid) prevents orphaned grandchildren from holding
// the output pipes open after a timeout.
func setupProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setsid = true

	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return os.ErrProcessDone
		}
		pid := cmd.Process.Pid
		// kill(-1) kills every process the user owns and kill(0) kills the
		// caller's own group. Treat invalid PIDs as already done rather than
		// risking either.
		if pid <= 1 {
			return os.ErrProcessDone
		}
		if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil {
			if errors.Is(err, syscall.ESRCH) {
				return os.ErrProcessDone
			}
			return err
		}
		return nil
	}
	cmd.WaitDelay = killWaitDelay
}
