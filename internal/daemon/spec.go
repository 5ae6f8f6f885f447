// Package daemon implements the nocrux process lifecycle: PID files,
// status derivation, the start and stop protocols, and output tailing.
//
// The only persisted state is the per-daemon PID file on disk. Status
// is re-derived from the PID file and the OS process table on every
// query, so the supervisor itself can exit, restart, or crash between
// invocations without losing track of its daemons.
package daemon

import (
	"os"
	"path/filepath"
	"strings"
)

// State is a daemon's derived lifecycle state. It is computed on
// demand and never stored.
type State string

const (
	Started State = "started"
	Stopped State = "stopped"
)

// Spec describes a single managed daemon. A Spec is immutable for the
// lifetime of one invocation; it is rebuilt from configuration every
// run and never persisted.
type Spec struct {
	// Name uniquely identifies the daemon within a run.
	Name string

	// Prog is the program to execute. Looked up in PATH if relative.
	Prog string

	// Args are the program arguments, not including the program name.
	Args []string

	// Cwd is the working directory for the daemon. A leading ~ is
	// expanded against the resolved user's home. Empty means the
	// resolved user's home directory.
	Cwd string

	// User and Group are optional names the daemon runs as. Changing
	// to them requires sufficient privileges.
	User  string
	Group string

	// Stdin, Stdout and Stderr are the files the daemon's standard
	// streams are bound to. Empty Stderr reuses the Stdout file.
	Stdin  string
	Stdout string
	Stderr string

	// PIDFile records the daemon's process id.
	PIDFile string

	// EnvFile optionally names a KEY=VAL file merged into the daemon's
	// environment at launch.
	EnvFile string
}

// applyDefaults resolves the spec's optional paths against root. The
// defaults are fixed here, at registration time; changing the root
// directory afterwards does not affect an already-registered spec.
func (s *Spec) applyDefaults(root string) {
	if s.Stdin == "" {
		s.Stdin = os.DevNull
	}
	if s.Stdout == "" {
		s.Stdout = filepath.Join(root, s.Name+".out")
	}
	if s.PIDFile == "" {
		s.PIDFile = filepath.Join(root, s.Name+".pid")
	}
}

// stderrPath returns the file the daemon's stderr is bound to.
func (s *Spec) stderrPath() string {
	if s.Stderr != "" {
		return s.Stderr
	}
	return s.Stdout
}

// expandHome replaces a leading ~ in path with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
