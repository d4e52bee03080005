package bootstrap

import (
	"context"
	"time"

	"github.com/firefly-engineering/squid-in-a-can/internal/config"
	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
	"github.com/firefly-engineering/squid-in-a-can/internal/system"
)

// prepareCache hands the cache directory to the squid user and lets squid
// build its swap directories.
func (b *Bootstrapper) prepareCache(ctx context.Context, opts *config.Options) error {
	chown, err := b.settings.ChownArgv()
	if err != nil {
		return errors.ConfigError("invalid chown command", err)
	}
	chown = append(chown, "-R", b.settings.Commands.CacheOwner, b.settings.Paths.CacheDir)
	if err := b.run(ctx, chown); err != nil {
		return err
	}

	squid, err := b.squidArgv("-z")
	if err != nil {
		return err
	}
	if err := b.run(ctx, squid); err != nil {
		return err
	}

	// Without a generated cache_dir there is no layout to wait for.
	if !opts.DirectivesOnly {
		dir := b.settings.FirstLevelCacheDir()
		timeout := b.settings.Timing.CacheWaitTimeout.Duration
		ready := b.waitForCache(ctx, dir, timeout)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !ready {
			logging.UserWarning("Cache directory %s did not appear within %v, starting squid anyway", dir, timeout)
		}
	}

	if grace := b.settings.Timing.GracePeriod.Duration; grace > 0 {
		logging.Debug("waiting for grace period", "duration", grace)
		select {
		case <-ctx.Done():
		case <-time.After(grace):
		}
	}

	return ctx.Err()
}

// waitForCache polls for dir until it exists or timeout elapses.
func (b *Bootstrapper) waitForCache(ctx context.Context, dir string, timeout time.Duration) bool {
	if b.fs.IsDir(dir) {
		return true
	}
	if timeout <= 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(b.settings.Timing.CachePollInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return b.fs.IsDir(dir)
		case <-ticker.C:
			if b.fs.IsDir(dir) {
				logging.Debug("cache directory ready", "path", dir)
				return true
			}
		}
	}
}

func (b *Bootstrapper) squidArgv(mode string) ([]string, error) {
	argv, err := b.settings.SquidArgv()
	if err != nil {
		return nil, errors.ConfigError("invalid squid command", err)
	}
	return append(argv, "-f", b.settings.Paths.Config, mode), nil
}

func (b *Bootstrapper) run(ctx context.Context, argv []string) error {
	if err := b.exec.Run(ctx, argv[0], argv[1:]...); err != nil {
		return errors.CommandFailed(system.CommandLine(argv[0], argv[1:]...), err)
	}
	return nil
}
