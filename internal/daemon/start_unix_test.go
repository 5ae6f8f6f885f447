//go:build !windows

package daemon

import (
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestReapPremature_DeadChild(t *testing.T) {
	cmd := exec.Command("sh", "-c", "exit 7")
	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}

	// The child is reaped by reapPremature itself, so poll it until
	// the exit has been collected.
	deadline := time.Now().Add(5 * time.Second)
	for {
		if err := reapPremature(cmd.Process.Pid); err != nil {
			if !strings.Contains(err.Error(), "status 7") {
				t.Errorf("unexpected error: %v", err)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("dead child never reported as premature exit")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestReapPremature_LiveChild(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cmd.Process.Kill()
		cmd.Wait()
	})

	if err := reapPremature(cmd.Process.Pid); err != nil {
		t.Errorf("live child reported as premature exit: %v", err)
	}
}
