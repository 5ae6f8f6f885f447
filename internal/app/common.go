package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nocrux/nocrux/internal/config"
	"github.com/nocrux/nocrux/internal/daemon"
	"github.com/nocrux/nocrux/internal/output"
)

// errFailed aggregates per-daemon failures into the command's exit
// code; the individual failures have already been logged.
var errFailed = errors.New("one or more daemons failed")

// newController loads configuration and wires the daemon controller
// and operator logger for this invocation.
func newController() (*daemon.Controller, *daemon.Registry, *output.Logger, error) {
	reg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoColor()
	}

	log := output.NewLogger(os.Stdout)
	ctrl := daemon.NewController(reg, log)
	ctrl.ConfigFile = flagConfig
	return ctrl, reg, log, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
