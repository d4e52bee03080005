// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/squid.conf.in   - a stock squid.conf template
//	fixtures/bootstrap.toml  - a settings file overriding every default
//
// Raw access:
//
//	data, err := testutil.LoadFixture("squid.conf.in")
//
// # Test Environments
//
// NewTestEnv creates a temporary root holding the template, with settings
// pointing inside it and timings short enough for unit tests:
//
//	env := testutil.NewTestEnv(t)
//	env.Setenv("DISK_CACHE_SIZE", "100")
//	b := bootstrap.New(
//	    bootstrap.WithSettings(env.Settings),
//	    bootstrap.WithLookup(env.Lookup),
//	)
package testutil
