// ABOUTME: Unix process group management for hook subprocesses
// ABOUTME: New process group per hook so a timeout kill reaps shell children too

//go:build unix

package hooks

import (
	"os/exec"
	"syscall"
)

// setProcGroup runs the hook in its own process group so that children
// spawned by the shell line are killed together on timeout.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcGroup forcibly terminates the hook's entire process group.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process != nil {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	return nil
}
