package daemon

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a goroutine-safe bytes.Buffer for collecting tail
// output while the follower runs.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// waitFor polls until the buffer contains want or the deadline passes.
func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("tail output %q never contained %q", buf.String(), want)
}

func TestTail_MissingFile(t *testing.T) {
	err := Tail(context.Background(), filepath.Join(t.TempDir(), "absent.out"), os.Stdout)
	if err == nil {
		t.Fatal("expected error for missing output file")
	}
}

func TestTail_BacklogLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.out")
	var content strings.Builder
	for i := 1; i <= 25; i++ {
		content.WriteString("line ")
		content.WriteString(string(rune('0' + i%10)))
		content.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // backlog only, no follow

	var buf syncBuffer
	if err := Tail(ctx, path, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != tailBacklog {
		t.Errorf("expected %d backlog lines, got %d", tailBacklog, len(lines))
	}
}

func TestTail_FollowsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.out")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf syncBuffer
	done := make(chan error, 1)
	go func() { done <- Tail(ctx, path, &buf) }()

	waitFor(t, &buf, "first")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("second\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	waitFor(t, &buf, "second")

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTail_FollowsRecreatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.out")
	if err := os.WriteFile(path, []byte("before\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf syncBuffer
	done := make(chan error, 1)
	go func() { done <- Tail(ctx, path, &buf) }()

	waitFor(t, &buf, "before")

	// Remove and recreate, as a restarted daemon opening its output
	// with O_TRUNC elsewhere, or an external rotation, would.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("reborn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, &buf, "reborn")

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTail_HandlesTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.out")
	if err := os.WriteFile(path, []byte("old content that will vanish\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf syncBuffer
	done := make(chan error, 1)
	go func() { done <- Tail(ctx, path, &buf) }()

	waitFor(t, &buf, "old content")

	// Truncate and write fresh content, as log rotation would.
	if err := os.WriteFile(path, []byte("fresh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, &buf, "fresh")

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
