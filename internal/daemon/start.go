package daemon

import (
	"fmt"
	"os"
)

// LaunchCommand is the name of the hidden CLI command that runs the
// detached flow of the start protocol.
const LaunchCommand = "__launch"

// handshakeFD is the pipe the supervising flow passes to the detached
// flow; see spawnDetached.
const handshakeFD = 3

// LaunchFailureExit is the exit status of the detached flow when setup
// fails before the target program is launched. It is distinct from
// ordinary CLI failures so the supervising flow can tell the two
// apart.
const LaunchFailureExit = 2

// Start runs the supervising flow of the start protocol:
//
//	CheckRunning -> ResolveIdentity -> Detach -> wait for checkpoint
//
// It is idempotent: an already-started daemon logs and returns nil.
// The detached flow performs the remaining setup (privilege drop,
// working directory, path preparation, I/O redirection) and replaces
// its process image with the target program; Start blocks only until
// that flow reports "setup failed" or "launched". It cannot observe
// the program's later health.
func (c *Controller) Start(spec *Spec) error {
	if c.Status(spec) == Started {
		c.log.Daemonf(spec.Name, "daemon already started")
		return nil
	}

	// Fail fast on an unresolvable user/group, before spawning
	// anything. The detached flow resolves again for its own use.
	if _, err := ResolveIdentity(spec.User, spec.Group); err != nil {
		return err
	}

	pid, err := c.spawn(spec)
	if err != nil {
		return err
	}

	// pid is the daemon's final process id: image replacement in the
	// detached flow preserves it.
	c.log.Daemonf(spec.Name, "started (PID: %d)", pid)
	return nil
}

// ReportLaunchFailure writes err to the handshake pipe so the
// supervising flow can report it. Called by the hidden launch command
// right before exiting with LaunchFailureExit.
func ReportLaunchFailure(err error) {
	if err == nil {
		err = fmt.Errorf("detached flow returned without launching")
	}
	hs := os.NewFile(handshakeFD, "handshake")
	if hs == nil {
		return
	}
	fmt.Fprintln(hs, err.Error())
	hs.Close()
}
