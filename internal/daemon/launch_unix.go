//go:build !windows

package daemon

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Launch is the detached flow of the start protocol. It runs inside a
// fresh session created by the supervising flow and, on success, never
// returns: the process image is replaced with the target program. The
// sequence is fixed:
//
//	DropPrivileges -> working directory -> PreparePaths ->
//	RedirectIO -> record PID -> exec
//
// Any error is returned to the caller, which reports it through the
// handshake pipe and exits with LaunchFailureExit.
func (c *Controller) Launch(spec *Spec) error {
	id, err := ResolveIdentity(spec.User, spec.Group)
	if err != nil {
		return err
	}

	// Group before user: once the user privilege is dropped the group
	// can no longer be changed.
	if id.HasGID {
		if err := unix.Setgid(id.GID); err != nil {
			return errors.Wrapf(err, "not permitted to change to group %q", spec.Group)
		}
	}
	if id.HasUID {
		if err := unix.Setuid(id.UID); err != nil {
			return errors.Wrapf(err, "not permitted to change to user %q", spec.User)
		}
	}

	if id.Home != "" {
		os.Setenv("HOME", id.Home)
	}

	cwd := spec.Cwd
	if cwd == "" {
		cwd = os.Getenv("HOME")
	}
	cwd = expandHome(cwd, os.Getenv("HOME"))
	if err := os.Chdir(cwd); err != nil {
		return errors.Wrapf(err, "changing directory to %q", cwd)
	}

	for _, p := range []string{spec.PIDFile, spec.Stdin, spec.Stdout, spec.stderrPath()} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %q", p)
		}
	}

	env := os.Environ()
	if spec.EnvFile != "" {
		extra, err := godotenv.Read(spec.EnvFile)
		if err != nil {
			return errors.Wrapf(err, "reading env file %q", spec.EnvFile)
		}
		env = mergeEnv(env, extra)
	}

	si, err := os.Open(spec.Stdin)
	if err != nil {
		return errors.Wrap(err, "opening stdin file")
	}
	so, err := os.OpenFile(spec.Stdout, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "opening stdout file")
	}
	se := so
	if spec.Stderr != "" {
		se, err = os.OpenFile(spec.Stderr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "opening stderr file")
		}
	}

	prog, err := exec.LookPath(spec.Prog)
	if err != nil {
		return errors.Wrapf(err, "locating program %q", spec.Prog)
	}

	// Echo the command line before the streams are rebound so the
	// operator still sees it on the original output stream.
	argv := append([]string{spec.Prog}, spec.Args...)
	c.log.Daemonf(spec.Name, "running %s", ShellJoin(argv))

	// The PID written is this process's own: exec preserves it.
	if err := WritePIDFile(spec.PIDFile, os.Getpid()); err != nil {
		return err
	}

	// Mark the handshake pipe close-on-exec: a successful exec closes
	// it with no payload, which the supervising flow reads as
	// "launched".
	if _, err := unix.FcntlInt(uintptr(handshakeFD), unix.F_SETFD, unix.FD_CLOEXEC); err != nil {
		return errors.Wrap(err, "marking handshake pipe close-on-exec")
	}

	if err := unix.Dup2(int(si.Fd()), 0); err != nil {
		return errors.Wrap(err, "rebinding stdin")
	}
	if err := unix.Dup2(int(so.Fd()), 1); err != nil {
		return errors.Wrap(err, "rebinding stdout")
	}
	if err := unix.Dup2(int(se.Fd()), 2); err != nil {
		return errors.Wrap(err, "rebinding stderr")
	}

	err = unix.Exec(prog, argv, env)
	return errors.Wrapf(err, "executing %q", prog)
}

// mergeEnv overlays extra onto base, replacing inherited entries in
// place. The environment goes to exec verbatim, with no deduplication,
// and getenv takes the first match; an override appended after the
// inherited entry would never be seen.
func mergeEnv(base []string, extra map[string]string) []string {
	out := make([]string, 0, len(base)+len(extra))
	replaced := make(map[string]bool, len(extra))
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		if v, ok := extra[k]; ok {
			out = append(out, k+"="+v)
			replaced[k] = true
			continue
		}
		out = append(out, kv)
	}
	for k, v := range extra {
		if !replaced[k] {
			out = append(out, k+"="+v)
		}
	}
	return out
}
