package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestBootstrapError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *BootstrapError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestBootstrapError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestNotRoot(t *testing.T) {
	err := NotRoot()

	if err.Code != ExitNotRoot {
		t.Errorf("Code = %d, want %d", err.Code, ExitNotRoot)
	}
	if err.Code >= 0 {
		t.Errorf("Code = %d, want a negative status", err.Code)
	}
	if err.Message != "this must be run as root, aborting" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("not a number")
	err := ConfigError("invalid DISK_CACHE_SIZE", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestRenderFailed(t *testing.T) {
	cause := fmt.Errorf("read-only file system")
	err := RenderFailed("/etc/squid3/squid.conf", cause)

	if err.Code != ExitRenderFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitRenderFailed)
	}
	if err.Message != "failed to render /etc/squid3/squid.conf" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestCommandFailed(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := CommandFailed("chown", cause)

	if err.Code != ExitCommandFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitCommandFailed)
	}
	if err.Message != "command chown failed" {
		t.Errorf("Message = %q, want %q", err.Message, "command chown failed")
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestLaunchFailed(t *testing.T) {
	cause := fmt.Errorf("executable file not found in $PATH")
	err := LaunchFailed(cause)

	if err.Code != ExitLaunchFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitLaunchFailed)
	}
}

func TestDaemonExited(t *testing.T) {
	tests := []struct {
		code    int
		wantMsg string
	}{
		{1, "squid exited with code 1"},
		{3, "squid exited with code 3"},
		{-15, "squid exited with code -15"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			err := DaemonExited(tt.code)
			if got := GetExitCode(err); got != tt.code {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.code)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestInterrupted(t *testing.T) {
	err := Interrupted("terminated", -15)

	if got := GetExitCode(err); got != -15 {
		t.Errorf("GetExitCode() = %d, want -15", got)
	}
	if err.Error() != "received terminated before squid started" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "BootstrapError",
			err:      NotRoot(),
			wantCode: ExitNotRoot,
		},
		{
			name:     "wrapped BootstrapError",
			err:      fmt.Errorf("outer: %w", CommandFailed("squid3", nil)),
			wantCode: ExitCommandFailed,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var bootstrapErr *BootstrapError
	if !errors.As(outer, &bootstrapErr) {
		t.Error("errors.As should find BootstrapError")
	}

	if bootstrapErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", bootstrapErr.Code, ExitConfigError)
	}
}
