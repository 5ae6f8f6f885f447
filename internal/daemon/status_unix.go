//go:build !windows

package daemon

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// ProcessExists reports whether a process with the given pid is alive.
// Sending signal 0 probes the process table without delivering
// anything. pid 0 and any delivery failure (no such process, no
// permission) report false.
func ProcessExists(pid int) bool {
	if pid <= 0 {
		return false
	}
	return unix.Kill(pid, 0) == nil
}

// sendSignal delivers sig to pid.
func sendSignal(pid int, sig syscall.Signal) error {
	return unix.Kill(pid, sig)
}
