package output

import (
	"fmt"
	"io"
)

// Logger writes operator-facing log lines prefixed with the daemon's
// name, one line per event:
//
//	-  [redis] started (PID: 5887)
type Logger struct {
	w io.Writer
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Daemonf logs a formatted message for the named daemon.
func (l *Logger) Daemonf(name, format string, args ...any) {
	fmt.Fprintf(l.w, "-  [%s] %s\n", StyleName.Render(name), fmt.Sprintf(format, args...))
}

// Errorf logs a formatted failure message for the named daemon.
func (l *Logger) Errorf(name, format string, args ...any) {
	l.Daemonf(name, "%s", StyleError.Render(fmt.Sprintf(format, args...)))
}
