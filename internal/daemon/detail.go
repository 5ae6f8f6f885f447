package daemon

import (
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Detail describes the live process behind a started daemon.
type Detail struct {
	PID     int
	Cmdline string
	Uptime  time.Duration
}

// ProcessDetail inspects the live process with the given pid. The
// lifecycle never depends on it; it exists so status output can show
// what is actually running behind a recorded pid, since PID files
// carry no start-time fingerprint and a pid can in principle be reused
// by an unrelated process.
func ProcessDetail(pid int) (*Detail, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, err
	}

	d := &Detail{PID: pid}
	if cmdline, err := proc.Cmdline(); err == nil {
		d.Cmdline = cmdline
	}
	if created, err := proc.CreateTime(); err == nil {
		d.Uptime = time.Since(time.UnixMilli(created)).Truncate(time.Second)
	}
	return d, nil
}
