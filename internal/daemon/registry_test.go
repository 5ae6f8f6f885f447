package daemon

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRegister_AppliesDefaults(t *testing.T) {
	root := t.TempDir()
	reg := NewRegistry(root, 0, 0)

	spec := &Spec{Name: "redis", Prog: "/usr/bin/redis-server"}
	if err := reg.Register(spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if spec.Stdin != os.DevNull {
		t.Errorf("expected stdin default %q, got %q", os.DevNull, spec.Stdin)
	}
	if want := filepath.Join(root, "redis.out"); spec.Stdout != want {
		t.Errorf("expected stdout %q, got %q", want, spec.Stdout)
	}
	if want := filepath.Join(root, "redis.pid"); spec.PIDFile != want {
		t.Errorf("expected pidfile %q, got %q", want, spec.PIDFile)
	}
	if spec.Stderr != "" {
		t.Errorf("expected stderr to stay empty (reuses stdout), got %q", spec.Stderr)
	}
}

func TestRegister_DefaultsFixedAtRegistration(t *testing.T) {
	reg := NewRegistry("/first/root", 0, 0)

	spec := &Spec{Name: "d", Prog: "/bin/true"}
	if err := reg.Register(spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A later root change must not retroactively move the already
	// resolved paths.
	reg.Root = "/second/root"
	if want := filepath.Join("/first/root", "d.pid"); spec.PIDFile != want {
		t.Errorf("expected pidfile %q, got %q", want, spec.PIDFile)
	}
}

func TestRegister_ExplicitPathsKept(t *testing.T) {
	reg := NewRegistry("/root", 0, 0)

	spec := &Spec{
		Name:    "d",
		Prog:    "/bin/true",
		Stdout:  "/var/log/d.log",
		PIDFile: "/run/d.pid",
	}
	if err := reg.Register(spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Stdout != "/var/log/d.log" || spec.PIDFile != "/run/d.pid" {
		t.Errorf("explicit paths were overwritten: %+v", spec)
	}
}

func TestRegister_DuplicateName(t *testing.T) {
	reg := NewRegistry(t.TempDir(), 0, 0)

	if err := reg.Register(&Spec{Name: "d", Prog: "/bin/true"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Register(&Spec{Name: "d", Prog: "/bin/false"}); err == nil {
		t.Fatal("expected error for duplicate name")
	}
}

func TestRegister_Validation(t *testing.T) {
	reg := NewRegistry(t.TempDir(), 0, 0)

	if err := reg.Register(&Spec{Prog: "/bin/true"}); err == nil {
		t.Error("expected error for empty name")
	}
	if err := reg.Register(&Spec{Name: "d"}); err == nil {
		t.Error("expected error for empty prog")
	}
}

func TestSelect(t *testing.T) {
	reg := NewRegistry(t.TempDir(), 0, 0)
	for _, name := range []string{"a", "b", "c"} {
		if err := reg.Register(&Spec{Name: name, Prog: "/bin/true"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := reg.Select([]string{"all"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	if !reflect.DeepEqual(names, []string{"a", "b", "c"}) {
		t.Errorf(`expected "all" to select in registration order, got %v`, names)
	}

	some, err := reg.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(some) != 2 || some[0].Name != "c" || some[1].Name != "a" {
		t.Errorf("expected [c a], got %v", some)
	}

	if _, err := reg.Select([]string{"nope"}); err == nil {
		t.Error("expected error for unknown daemon name")
	}
}
