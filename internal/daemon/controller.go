package daemon

import (
	"syscall"

	"github.com/nocrux/nocrux/internal/output"
)

// Controller drives the lifecycle of the daemons in a Registry. All
// operations are sequential; the only concurrency is the OS-level
// split between the supervising and detached flows inside Start.
//
// The probe, signal and spawn seams default to the real OS
// implementations and are replaced in tests.
type Controller struct {
	// ConfigFile is passed through to the detached flow so it loads
	// the same configuration as the supervising flow. Empty means the
	// default location.
	ConfigFile string

	reg *Registry
	log *output.Logger

	probe  func(pid int) bool
	signal func(pid int, sig syscall.Signal) error
	spawn  func(spec *Spec) (int, error)
}

// NewController wires a controller for the given registry.
func NewController(reg *Registry, log *output.Logger) *Controller {
	c := &Controller{
		reg: reg,
		log: log,
	}
	c.probe = ProcessExists
	c.signal = sendSignal
	c.spawn = c.spawnDetached
	return c
}

// Status derives the daemon's state from its PID file and the OS
// process table. Nothing is cached; every call re-reads both.
func (c *Controller) Status(spec *Spec) State {
	if c.probe(ReadPIDFile(spec.PIDFile)) {
		return Started
	}
	return Stopped
}
