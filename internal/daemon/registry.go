package daemon

import (
	"time"

	"github.com/pkg/errors"
)

// Default global parameters, used when configuration does not override
// them.
const (
	DefaultKillTimeout  = 10 * time.Second
	DefaultPollInterval = 500 * time.Millisecond
)

// Registry is the per-invocation context value: every registered spec
// plus the two process-wide parameters. It replaces any ambient global
// state; one Registry is built from configuration per command and
// threaded through every operation.
type Registry struct {
	// Root is the directory default paths were derived from.
	Root string

	// KillTimeout bounds the graceful wait in the stop protocol.
	KillTimeout time.Duration

	// PollInterval is the existence-probe interval of the stop wait
	// loop.
	PollInterval time.Duration

	specs map[string]*Spec
	order []string
}

// NewRegistry returns an empty registry with the given globals.
// Non-positive durations fall back to the defaults.
func NewRegistry(root string, killTimeout, pollInterval time.Duration) *Registry {
	if killTimeout <= 0 {
		killTimeout = DefaultKillTimeout
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Registry{
		Root:         root,
		KillTimeout:  killTimeout,
		PollInterval: pollInterval,
		specs:        make(map[string]*Spec),
	}
}

// Register adds a spec, resolving its default paths against the
// registry's root. A duplicate name is a configuration error.
func (r *Registry) Register(s *Spec) error {
	if s.Name == "" {
		return errors.New("daemon name must not be empty")
	}
	if s.Prog == "" {
		return errors.Errorf("daemon %q: prog must not be empty", s.Name)
	}
	if _, ok := r.specs[s.Name]; ok {
		return errors.Errorf("daemon name %q already used", s.Name)
	}

	s.applyDefaults(r.Root)
	r.specs[s.Name] = s
	r.order = append(r.order, s.Name)
	return nil
}

// Get returns the spec registered under name.
func (r *Registry) Get(name string) (*Spec, error) {
	s, ok := r.specs[name]
	if !ok {
		return nil, errors.Errorf("unknown daemon %q", name)
	}
	return s, nil
}

// Select resolves daemon name arguments in registration order. The
// literal "all" selects every registered daemon.
func (r *Registry) Select(names []string) ([]*Spec, error) {
	if len(names) == 1 && names[0] == "all" {
		specs := make([]*Spec, 0, len(r.order))
		for _, name := range r.order {
			specs = append(specs, r.specs[name])
		}
		return specs, nil
	}

	specs := make([]*Spec, 0, len(names))
	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Names returns the registered daemon names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered daemons.
func (r *Registry) Len() int {
	return len(r.specs)
}
