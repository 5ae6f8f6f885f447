package daemon

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadPIDFile returns the process id recorded at path. A missing file,
// an empty file, or content that does not parse as a positive integer
// all read as 0, meaning "no recorded process"; none of these is an
// error.
func ReadPIDFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0
	}
	return pid
}

// WritePIDFile records pid at path as decimal text, creating the
// parent directory if it does not exist yet. There is no file locking;
// concurrent writers are not defended against.
func WritePIDFile(path string, pid int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating pidfile directory")
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return errors.Wrap(err, "writing pidfile")
	}
	return nil
}
