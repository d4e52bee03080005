package bootstrap

import (
	"time"

	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
	"github.com/firefly-engineering/squid-in-a-can/internal/system"
)

// launch starts squid in the foreground.
func (b *Bootstrapper) launch() (system.Process, error) {
	argv, err := b.squidArgv("-N")
	if err != nil {
		return nil, err
	}

	proc, err := b.exec.Start(argv[0], argv[1:]...)
	if err != nil {
		return nil, errors.LaunchFailed(err)
	}
	logging.Debug("squid started", "pid", proc.Pid())
	return proc, nil
}

// supervise blocks until proc exits and returns its exit code. Signals
// received meanwhile are passed on to the daemon, which decides how to stop.
func (b *Bootstrapper) supervise(proc system.Process) int {
	ticker := time.NewTicker(b.settings.Timing.PollInterval.Duration)
	defer ticker.Stop()

	for {
		if code, exited := proc.Poll(); exited {
			return code
		}

		select {
		case sig := <-b.signals:
			logging.Debug("forwarding signal", "signal", sig, "pid", proc.Pid())
			if err := proc.Signal(sig); err != nil {
				logging.Warn("failed to forward signal", "signal", sig, "error", err)
			}
		case <-ticker.C:
		}
	}
}
