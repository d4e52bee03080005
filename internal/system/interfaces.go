// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"context"
	"io/fs"
	"os"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Remove removes the named file or empty directory.
	Remove(path string) error

	// Exists returns true if the path exists.
	Exists(path string) bool

	// IsDir returns true if the path is a directory.
	IsDir(path string) bool
}

// CommandExecutor abstracts command execution for testability.
//
// Commands are always started from an explicit argument list; nothing is
// interpreted by a shell.
type CommandExecutor interface {
	// Run runs a command to completion with stdout/stderr attached to ours.
	// A non-zero exit status is returned as an error.
	Run(ctx context.Context, name string, args ...string) error

	// Start starts a long-running command with stdin/stdout/stderr attached
	// and returns a handle for observing it. The child is not bound to any
	// context: it runs until it exits on its own or is signalled.
	Start(name string, args ...string) (Process, error)
}

// Process is a started child process.
type Process interface {
	// Pid returns the child's process ID.
	Pid() int

	// Poll reports whether the child has exited without blocking. When it
	// has, exitCode holds its status; a child killed by signal N reports -N.
	Poll() (exitCode int, exited bool)

	// Signal delivers sig to the child.
	Signal(sig os.Signal) error
}

// Default instances using real OS operations.
var (
	defaultFS       FileSystem      = &osFileSystem{}
	defaultExecutor CommandExecutor = &osExecutor{}
)

// DefaultFS returns the default FileSystem implementation using real OS operations.
func DefaultFS() FileSystem {
	return defaultFS
}

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor sets the default CommandExecutor (useful for testing).
func SetDefaultExecutor(exec CommandExecutor) {
	defaultExecutor = exec
}

// ResetDefaults restores the default OS implementations.
func ResetDefaults() {
	defaultFS = &osFileSystem{}
	defaultExecutor = &osExecutor{}
}

// osFileSystem implements FileSystem using real OS operations.
type osFileSystem struct{}

func (f *osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *osFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (f *osFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (f *osFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *osFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
