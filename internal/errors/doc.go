// Package errors provides typed errors with exit codes for squid-in-a-can.
//
// # Error Types
//
// BootstrapError is the base error type that wraps an error with an exit code:
//
//	type BootstrapError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitNotRoot         = -1 // Not running with superuser privilege
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitConfigError     = 2  // Invalid environment or settings file
//	ExitRenderFailed    = 3  // squid.conf could not be written
//	ExitCommandFailed   = 4  // chown or squid -z failed
//	ExitLaunchFailed    = 5  // squid could not be started
//
// Once squid has been launched, its own exit code is relayed instead via
// DaemonExited.
//
// # Error Constructors
//
//	errors.NotRoot()
//	errors.ConfigError("invalid DISK_CACHE_SIZE", err)
//	errors.CommandFailed("chown", err)
//	errors.DaemonExited(1)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
