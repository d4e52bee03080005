package bootstrap

import (
	"context"
	"os"
	"syscall"

	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
)

// watchSetup calls cancel on the first signal received before squid is
// running. The returned stop ends the watch and reports that signal, or nil.
// After stop returns, signals are left for supervise.
func (b *Bootstrapper) watchSetup(cancel context.CancelFunc) (stop func() os.Signal) {
	done := make(chan struct{})
	finished := make(chan struct{})
	var caught os.Signal

	go func() {
		defer close(finished)
		select {
		case sig := <-b.signals:
			logging.Debug("signal during setup, aborting", "signal", sig)
			caught = sig
			cancel()
		case <-done:
		}
	}()

	return func() os.Signal {
		close(done)
		<-finished
		if caught == nil {
			// A signal may have raced with done.
			select {
			case caught = <-b.signals:
			default:
			}
		}
		return caught
	}
}

// signalExitCode reports death by signal N as -N, like a killed daemon.
func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return -int(s)
	}
	return errors.ExitGeneralError
}
