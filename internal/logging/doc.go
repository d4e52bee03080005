// Package logging provides logging utilities for squid-in-a-can.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("running command", "cmd", "chown -R proxy:proxy /var/cache/squid3")
//	logging.Warn("cache directories not ready", "timeout", timeout)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Appending to squid.conf: [%s]", line)
//	logging.UserSuccess("Cache directories ready")
//	logging.UserWarning("Forwarding %s to squid", sig)
//	logging.UserError("Squid failed to start: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess, UserText: stdout
//   - UserWarning, UserError: stderr
//
// SetUserOutput redirects both streams, which tests use to capture what an
// operator would see on the container console.
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
