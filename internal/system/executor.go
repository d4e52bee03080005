package system

import (
	"context"
	"os"
	"os/exec"
	"syscall"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Run(ctx context.Context, name string, args ...string) error {
	logging.Debug("running command", "cmd", CommandLine(name, args...))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (e *osExecutor) Start(name string, args ...string) (Process, error) {
	logging.Debug("starting command", "cmd", CommandLine(name, args...))

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &osProcess{cmd: cmd, done: make(chan struct{})}
	go p.reap()
	return p, nil
}

// osProcess wraps a started exec.Cmd. A single goroutine reaps the child;
// code is written before done is closed and only read after.
type osProcess struct {
	cmd  *exec.Cmd
	done chan struct{}
	code int
}

func (p *osProcess) reap() {
	// The exit status is carried by ProcessState; the error adds nothing.
	_ = p.cmd.Wait()
	p.code = exitStatus(p.cmd.ProcessState)
	close(p.done)
}

func (p *osProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *osProcess) Poll() (int, bool) {
	select {
	case <-p.done:
		return p.code, true
	default:
		return 0, false
	}
}

func (p *osProcess) Signal(sig os.Signal) error {
	return p.cmd.Process.Signal(sig)
}

// exitStatus converts a process state into an exit code, reporting death
// by signal N as -N.
func exitStatus(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal())
	}
	return state.ExitCode()
}

// CommandLine renders an argument list as a single shell-quoted string for
// display. The result is never executed.
func CommandLine(name string, args ...string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}
