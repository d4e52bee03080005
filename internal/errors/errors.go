package errors

import (
	"errors"
	"fmt"
)

// Exit codes for squid-in-a-can
const (
	ExitNotRoot       = -1
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitConfigError   = 2
	ExitRenderFailed  = 3
	ExitCommandFailed = 4
	ExitLaunchFailed  = 5
)

// BootstrapError is the base error type for squid-in-a-can
type BootstrapError struct {
	Code    int
	Message string
	Cause   error
}

func (e *BootstrapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BootstrapError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *BootstrapError) ExitCode() int {
	return e.Code
}

// New creates a new BootstrapError
func New(code int, message string) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a BootstrapError
func Wrap(code int, message string, cause error) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// NotRoot returns the error for a run without superuser privilege
func NotRoot() *BootstrapError {
	return New(ExitNotRoot, "this must be run as root, aborting")
}

// ConfigError returns an error for environment or settings problems
func ConfigError(message string, cause error) *BootstrapError {
	return Wrap(ExitConfigError, message, cause)
}

// RenderFailed returns an error for a squid.conf that could not be written
func RenderFailed(path string, cause error) *BootstrapError {
	return Wrap(ExitRenderFailed, fmt.Sprintf("failed to render %s", path), cause)
}

// CommandFailed returns an error for a failed external command
func CommandFailed(name string, cause error) *BootstrapError {
	return Wrap(ExitCommandFailed, fmt.Sprintf("command %s failed", name), cause)
}

// LaunchFailed returns an error for a daemon that could not be started
func LaunchFailed(cause error) *BootstrapError {
	return Wrap(ExitLaunchFailed, "failed to start squid", cause)
}

// DaemonExited returns an error carrying squid's own non-zero exit code
func DaemonExited(code int) *BootstrapError {
	return New(code, fmt.Sprintf("squid exited with code %d", code))
}

// Interrupted returns an error for a signal received before squid was
// started. code follows the convention used for a daemon killed by signal.
func Interrupted(signal string, code int) *BootstrapError {
	return New(code, fmt.Sprintf("received %s before squid started", signal))
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var bootstrapErr *BootstrapError
	if errors.As(err, &bootstrapErr) {
		return bootstrapErr.ExitCode()
	}
	return ExitGeneralError
}
