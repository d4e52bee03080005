package bootstrap

import (
	"context"
	"os"

	"golang.org/x/sys/unix"

	"github.com/firefly-engineering/squid-in-a-can/internal/config"
	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
	"github.com/firefly-engineering/squid-in-a-can/internal/squidconf"
	"github.com/firefly-engineering/squid-in-a-can/internal/system"
)

// ConfigMode is the permission squid.conf is written with.
const ConfigMode = 0644

// Bootstrapper runs the bootstrap sequence.
type Bootstrapper struct {
	settings *config.Settings
	lookup   config.LookupFunc
	fs       system.FileSystem
	exec     system.CommandExecutor
	euid     func() int
	signals  <-chan os.Signal
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithSettings sets the paths, commands and timing to use.
func WithSettings(s *config.Settings) Option {
	return func(b *Bootstrapper) {
		b.settings = s
	}
}

// WithLookup sets where environment variables are read from instead of the
// process environment.
func WithLookup(lookup config.LookupFunc) Option {
	return func(b *Bootstrapper) {
		b.lookup = lookup
	}
}

// WithFS sets the filesystem implementation.
func WithFS(fs system.FileSystem) Option {
	return func(b *Bootstrapper) {
		b.fs = fs
	}
}

// WithExecutor sets the command executor.
func WithExecutor(exec system.CommandExecutor) Option {
	return func(b *Bootstrapper) {
		b.exec = exec
	}
}

// WithEUID overrides the effective UID check.
func WithEUID(euid func() int) Option {
	return func(b *Bootstrapper) {
		b.euid = euid
	}
}

// WithSignals sets the channel of signals to forward to the daemon.
func WithSignals(ch <-chan os.Signal) Option {
	return func(b *Bootstrapper) {
		b.signals = ch
	}
}

// New creates a Bootstrapper. Unset dependencies default to the real OS.
func New(opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		settings: config.DefaultSettings(),
		fs:       system.DefaultFS(),
		exec:     system.DefaultExecutor(),
		euid:     unix.Geteuid,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes the whole sequence and returns the daemon's exit code. When
// an error is returned the code is the matching process exit status.
func (b *Bootstrapper) Run(ctx context.Context) (int, error) {
	if b.euid() != 0 {
		err := errors.NotRoot()
		return err.ExitCode(), err
	}

	if err := b.setup(ctx); err != nil {
		return errors.GetExitCode(err), err
	}

	proc, err := b.launch()
	if err != nil {
		return errors.GetExitCode(err), err
	}

	logging.UserInfo("Waiting for squid to finish")
	code := b.supervise(proc)
	logging.UserInfo("Squid process exited with return code %d", code)

	return code, nil
}

// setup runs every step before the launch. A signal received meanwhile
// cancels the step in progress and aborts the run.
func (b *Bootstrapper) setup(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := b.watchSetup(cancel)
	err := b.prepareAll(ctx)
	if sig := stop(); sig != nil {
		return errors.Interrupted(sig.String(), signalExitCode(sig))
	}
	return err
}

func (b *Bootstrapper) prepareAll(ctx context.Context) error {
	if err := b.removeStalePID(); err != nil {
		return err
	}

	opts, doc, err := b.Prepare()
	if err != nil {
		return err
	}

	doc.Announce()
	if err := b.WriteConfig(doc, b.settings.Paths.Config); err != nil {
		return err
	}

	return b.prepareCache(ctx, opts)
}

// Prepare reads the options and assembles squid.conf without writing it.
// The template is only read when it is going to be used.
func (b *Bootstrapper) Prepare() (*config.Options, *squidconf.Document, error) {
	var (
		opts *config.Options
		err  error
	)
	if b.lookup != nil {
		opts, err = config.LoadOptions(b.lookup)
	} else {
		opts, err = config.OptionsFromEnv()
	}
	if err != nil {
		return nil, nil, errors.ConfigError("invalid environment", err)
	}

	var template []byte
	if !opts.DirectivesOnly {
		template, err = b.fs.ReadFile(b.settings.Paths.Template)
		if err != nil {
			return nil, nil, errors.RenderFailed(b.settings.Paths.Config, err)
		}
	}

	return opts, squidconf.New(opts, b.settings, template), nil
}

// WriteConfig overwrites path with the rendered document.
func (b *Bootstrapper) WriteConfig(doc *squidconf.Document, path string) error {
	logging.Debug("writing squid config", "path", path)
	if err := b.fs.WriteFile(path, doc.Bytes(), ConfigMode); err != nil {
		return errors.RenderFailed(path, err)
	}
	return nil
}

func (b *Bootstrapper) removeStalePID() error {
	pidFile := b.settings.Paths.PIDFile
	if !b.fs.Exists(pidFile) {
		return nil
	}

	logging.Debug("removing stale pid file", "path", pidFile)
	if err := b.fs.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ExitGeneralError, "failed to remove stale pid file "+pidFile, err)
	}
	return nil
}
