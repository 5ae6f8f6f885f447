package daemon

import (
	"context"
	"syscall"
	"time"
)

// Stop runs the stop protocol:
//
//	ReadPid -> SIGTERM -> poll existence -> SIGKILL on timeout
//
// It is idempotent: a recorded pid of 0 or a failed SIGTERM delivery
// means the daemon is not running, which logs "not started" and
// returns nil. The wait polls at the registry's PollInterval for at
// most KillTimeout; a process still alive after that is SIGKILLed,
// where a delivery failure means it vanished in the race window and is
// also success. The wait loop honors ctx so a caller can cancel a
// stuck stop.
func (c *Controller) Stop(ctx context.Context, spec *Spec) error {
	pid := ReadPIDFile(spec.PIDFile)
	if pid == 0 || c.signal(pid, syscall.SIGTERM) != nil {
		c.log.Daemonf(spec.Name, "not started")
		return nil
	}

	c.log.Daemonf(spec.Name, "stopping...")

	deadline := time.Now().Add(c.reg.KillTimeout)
	ticker := time.NewTicker(c.reg.PollInterval)
	defer ticker.Stop()

	for time.Now().Before(deadline) && c.probe(pid) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if c.probe(pid) {
		// Still alive past the timeout: escalate.
		if err := c.signal(pid, syscall.SIGKILL); err != nil {
			c.log.Daemonf(spec.Name, "stopped")
		} else {
			c.log.Daemonf(spec.Name, "stopped (SIGKILL)")
		}
		return nil
	}

	c.log.Daemonf(spec.Name, "stopped")
	return nil
}
