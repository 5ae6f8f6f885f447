//go:build !windows

package daemon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMergeEnv_OverridesInPlace(t *testing.T) {
	base := []string{"PATH=/usr/bin", "KEY=inherited", "TERM=xterm"}
	extra := map[string]string{"KEY": "fromfile", "NEW": "added"}

	got := mergeEnv(base, extra)

	// getenv takes the first match, so the override must replace the
	// inherited entry rather than shadow it from behind.
	var keys []string
	for _, kv := range got {
		k, v, _ := strings.Cut(kv, "=")
		if k == "KEY" {
			keys = append(keys, v)
		}
	}
	if len(keys) != 1 || keys[0] != "fromfile" {
		t.Errorf("KEY entries = %v, want exactly [fromfile]", keys)
	}

	if got[0] != "PATH=/usr/bin" || got[2] != "TERM=xterm" {
		t.Errorf("untouched entries reordered: %v", got)
	}
	if got[len(got)-1] != "NEW=added" {
		t.Errorf("new entry not appended: %v", got)
	}
}

func TestMergeEnv_NoExtras(t *testing.T) {
	base := []string{"A=1", "B=2"}
	got := mergeEnv(base, nil)
	if len(got) != 2 || got[0] != "A=1" || got[1] != "B=2" {
		t.Errorf("environment changed without overrides: %v", got)
	}
}

func TestLaunch_CreatesStreamParentDirs(t *testing.T) {
	tc := newTestController(t)
	tmp := t.TempDir()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	spec := tc.register(t, &Spec{
		Name:    "d",
		Prog:    "no-such-program-nocrux-test",
		Cwd:     tmp,
		Stdout:  filepath.Join(tmp, "logs", "d.out"),
		Stderr:  filepath.Join(tmp, "errs", "d.err"),
		PIDFile: filepath.Join(tmp, "run", "d.pid"),
	})

	// The program does not exist, so Launch stops at lookup, after the
	// parent directories were created and the streams opened.
	err = tc.Launch(spec)
	if err == nil {
		t.Fatal("expected error for nonexistent program")
	}
	if !strings.Contains(err.Error(), "locating program") {
		t.Errorf("unexpected error: %v", err)
	}

	for _, dir := range []string{"logs", "errs", "run"} {
		if _, err := os.Stat(filepath.Join(tmp, dir)); err != nil {
			t.Errorf("parent directory %q not created: %v", dir, err)
		}
	}
}
