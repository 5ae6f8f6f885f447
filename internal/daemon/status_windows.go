//go:build windows

package daemon

import (
	"syscall"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/process"
)

// ProcessExists reports whether a process with the given pid is alive.
func ProcessExists(pid int) bool {
	if pid <= 0 {
		return false
	}
	ok, err := process.PidExists(int32(pid))
	return err == nil && ok
}

func sendSignal(pid int, sig syscall.Signal) error {
	if sig != syscall.SIGKILL {
		return errors.Errorf("signal %v not supported on windows", sig)
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return p.Kill()
}

// spawnDetached is not available on windows: the start protocol
// depends on sessions and exec-style image replacement.
func (c *Controller) spawnDetached(spec *Spec) (int, error) {
	return 0, errors.New("starting daemons requires a unix-like platform")
}

// Launch is the detached flow of the start protocol; see the unix
// implementation.
func (c *Controller) Launch(spec *Spec) error {
	return errors.New("starting daemons requires a unix-like platform")
}
