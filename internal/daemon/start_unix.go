//go:build !windows

package daemon

import (
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

// spawnDetached re-executes the current binary into the hidden launch
// command in a new session and waits for the setup handshake on a
// pipe. The handshake has two outcomes:
//
//   - the pipe closes with no payload: setup succeeded and the target
//     program was launched (a successful exec closes the close-on-exec
//     pipe end);
//   - the pipe carries a message: setup failed before launch, and the
//     detached flow exits with LaunchFailureExit.
//
// The returned pid is the daemon's final pid because exec-style image
// replacement preserves it.
func (c *Controller) spawnDetached(spec *Spec) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, errors.Wrap(err, "locating own executable")
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return 0, errors.Wrap(err, "creating handshake pipe")
	}
	defer pr.Close()

	args := []string{LaunchCommand, spec.Name}
	if c.ConfigFile != "" {
		args = append(args, "--config", c.ConfigFile)
	}

	cmd := exec.Command(exe, args...)
	// Inherit the original output streams so the detached flow's
	// command-line echo still reaches the operator.
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{pw} // handshake on fd 3
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		pw.Close()
		return 0, errors.Wrap(err, "spawning detached flow")
	}
	pw.Close()

	msg, err := io.ReadAll(pr)
	if err != nil {
		return 0, errors.Wrap(err, "reading launch handshake")
	}
	if len(msg) > 0 {
		// Reap the failed detached flow; on success it is never
		// waited on, since it has become the daemon.
		_ = cmd.Wait()
		return 0, errors.New(strings.TrimSpace(string(msg)))
	}

	// A detached flow that dies before it can report (panic, signal,
	// usage error) also closes the pipe with no payload. Catch that
	// case instead of announcing a dead pid as started.
	if err := reapPremature(cmd.Process.Pid); err != nil {
		return 0, err
	}

	return cmd.Process.Pid, nil
}

// reapPremature non-blockingly reaps pid and reports an error when it
// already exited with a failure. A successful exec keeps the process
// running under the same pid, so a child reapable with a non-zero
// status never became the daemon.
func reapPremature(pid int) error {
	var ws syscall.WaitStatus
	wpid, err := syscall.Wait4(pid, &ws, syscall.WNOHANG, nil)
	if err != nil || wpid != pid {
		return nil
	}
	if ws.Signaled() {
		return errors.Errorf("daemon setup died from signal %v before launching", ws.Signal())
	}
	if ws.Exited() && ws.ExitStatus() != 0 {
		return errors.Errorf("daemon setup exited with status %d before launching", ws.ExitStatus())
	}
	return nil
}
