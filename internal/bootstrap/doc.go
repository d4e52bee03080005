// Package bootstrap prepares and launches squid inside a container.
//
// A Bootstrapper runs a fixed sequence of steps, each a precondition for the
// next:
//
//	1. require root
//	2. remove a stale pid file
//	3. read options from the environment
//	4. render squid.conf
//	5. chown the cache directory to the squid user
//	6. run squid -z and wait for the cache layout to appear
//	7. start squid -N in the foreground
//	8. poll it until it exits, forwarding termination signals
//
// Run returns the daemon's exit code. Every failed step aborts the run with
// an error from the internal/errors package; nothing is retried.
//
// All OS access goes through system.FileSystem and system.CommandExecutor so
// the sequence can be tested with mocks:
//
//	b := bootstrap.New(
//	    bootstrap.WithFS(system.NewMockFS()),
//	    bootstrap.WithExecutor(system.NewMockExecutor()),
//	    bootstrap.WithEUID(func() int { return 0 }),
//	)
//	code, err := b.Run(ctx)
package bootstrap
