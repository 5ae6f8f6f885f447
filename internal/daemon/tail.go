package daemon

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// tailBacklog is how many trailing lines Tail prints before following.
const tailBacklog = 10

// tailChunk bounds how far back in the file the backlog scan reaches.
const tailChunk = 64 * 1024

// Tail writes the last few lines of path to w, then follows appended
// output until ctx is cancelled. A truncated file is re-read from the
// start. Cancellation is the normal way to leave a tail; it is not an
// error.
func Tail(ctx context.Context, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening output file")
	}
	defer func() { f.Close() }()

	offset, err := writeBacklog(f, w)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer watcher.Close()

	// Watch the directory rather than the file: the file may be
	// removed and recreated while we follow it.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "watching output directory")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != path {
				continue
			}
			if ev.Has(fsnotify.Create) {
				// The file was removed and recreated; the old handle
				// points at the orphaned inode, so follow the new file
				// from its start.
				nf, err := os.Open(path)
				if err != nil {
					continue
				}
				f.Close()
				f, offset = nf, 0
			} else if !ev.Has(fsnotify.Write) {
				continue
			}
			offset, err = copyAppended(f, w, offset)
			if err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watching output file")
		}
	}
}

// writeBacklog prints the last tailBacklog lines of f to w and returns
// the offset following copies should resume from.
func writeBacklog(f *os.File, w io.Writer) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat output file")
	}
	size := info.Size()

	start := size - tailChunk
	if start < 0 {
		start = 0
	}

	buf := make([]byte, size-start)
	if _, err := f.ReadAt(buf, start); err != nil && err != io.EOF {
		return 0, errors.Wrap(err, "reading output file")
	}

	lines := bytes.Split(buf, []byte{'\n'})
	// A trailing newline leaves an empty final element; drop it so it
	// does not count against the backlog.
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > tailBacklog {
		lines = lines[len(lines)-tailBacklog:]
	}

	for _, line := range lines {
		if _, err := w.Write(append(line, '\n')); err != nil {
			return 0, err
		}
	}
	return size, nil
}

// copyAppended copies everything past offset to w and returns the new
// offset. A file that shrank was truncated and is re-read from the
// start.
func copyAppended(f *os.File, w io.Writer, offset int64) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return offset, errors.Wrap(err, "stat output file")
	}
	if info.Size() < offset {
		offset = 0
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, errors.Wrap(err, "seeking output file")
	}
	n, err := io.Copy(w, f)
	if err != nil {
		return offset, errors.Wrap(err, "copying output")
	}
	return offset + n, nil
}
