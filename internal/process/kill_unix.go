//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// Chrome's renderer and GPU helpers down with the browser. Non-positive
// PIDs are ignored: -0 would target the caller's own group.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best effort: launcher.Kill covers the browser process itself.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
