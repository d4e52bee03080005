package system

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// MockFS implements FileSystem for testing.
type MockFS struct {
	mu    sync.RWMutex
	files map[string]*mockFile
	dirs  map[string]bool

	// Writes counts successful WriteFile and Remove calls.
	Writes int

	// Error injection
	ReadFileErr  error
	WriteFileErr error
	RemoveErr    error
}

type mockFile struct {
	data []byte
	mode fs.FileMode
}

// NewMockFS creates a new MockFS with an empty filesystem.
func NewMockFS() *MockFS {
	return &MockFS{
		files: make(map[string]*mockFile),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFS) AddFile(path string, data []byte, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &mockFile{data: data, mode: mode}
	// Ensure parent directories exist
	dir := filepath.Dir(path)
	for dir != "." && dir != "/" {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

// AddDir adds a directory to the mock filesystem.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
}

// GetFile returns the contents of a file in the mock filesystem.
func (m *MockFS) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, false
	}
	return f.data, true
}

// WriteCount returns the number of mutating calls that succeeded.
func (m *MockFS) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Writes
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return f.data, nil
}

func (m *MockFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if m.WriteFileErr != nil {
		return m.WriteFileErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &mockFile{data: append([]byte(nil), data...), mode: perm}
	m.Writes++
	return nil
}

func (m *MockFS) Remove(path string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		m.Writes++
		return nil
	}
	if _, ok := m.dirs[path]; ok {
		delete(m.dirs, path)
		m.Writes++
		return nil
	}
	return fs.ErrNotExist
}

func (m *MockFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, fileOk := m.files[path]
	_, dirOk := m.dirs[path]
	return fileOk || dirOk
}

func (m *MockFS) IsDir(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.dirs[path]
	return ok
}

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed and started commands for verification.
	Commands []MockCommand

	// Responses maps command patterns to the error Run returns.
	// Key format: "command arg1" or "command".
	Responses map[string]error

	// OnRun is called after a Run command is recorded, before its response
	// is returned. Tests use it to simulate side effects such as squid -z
	// creating cache directories.
	OnRun func(cmd MockCommand)

	// Process is returned by Start. When nil, Start returns a process that
	// exits immediately with status 0.
	Process *MockProcess

	// StartErr is returned by Start if set.
	StartErr error
}

// MockCommand records an executed command.
type MockCommand struct {
	Name    string
	Args    []string
	Started bool
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  make([]MockCommand, 0),
		Responses: make(map[string]error),
	}
}

// AddResponse sets the error returned for a specific command pattern.
func (m *MockExecutor) AddResponse(pattern string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = err
}

func (m *MockExecutor) Run(ctx context.Context, name string, args ...string) error {
	m.mu.Lock()
	cmd := MockCommand{Name: name, Args: args}
	m.Commands = append(m.Commands, cmd)
	hook := m.OnRun

	// Look for matching response
	key := name
	if len(args) > 0 {
		key = name + " " + args[0]
	}
	err, ok := m.Responses[key]
	if !ok {
		err = m.Responses[name]
	}
	m.mu.Unlock()

	if hook != nil {
		hook(cmd)
	}
	return err
}

func (m *MockExecutor) Start(name string, args ...string) (Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, MockCommand{Name: name, Args: args, Started: true})

	if m.StartErr != nil {
		return nil, m.StartErr
	}
	if m.Process == nil {
		m.Process = &MockProcess{PID: 4242}
	}
	return m.Process, nil
}

// LastCommand returns the most recently executed command.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// MockProcess implements Process for testing.
type MockProcess struct {
	mu sync.Mutex

	// PID is returned by Pid.
	PID int

	// ExitCode is reported once the process has exited.
	ExitCode int

	// PollsUntilExit is the number of Poll calls that report the process
	// as still running before it exits.
	PollsUntilExit int

	// ExitOnSignal makes any delivered signal end the process; the next
	// Poll reports the exit.
	ExitOnSignal bool

	// SignalErr is returned by Signal if set.
	SignalErr error

	polls   int
	signals []os.Signal
}

func (p *MockProcess) Pid() int {
	return p.PID
}

func (p *MockProcess) Poll() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ExitOnSignal && len(p.signals) > 0 {
		return p.ExitCode, true
	}
	if p.polls >= p.PollsUntilExit {
		return p.ExitCode, true
	}
	p.polls++
	return 0, false
}

func (p *MockProcess) Signal(sig os.Signal) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.SignalErr != nil {
		return p.SignalErr
	}
	p.signals = append(p.signals, sig)
	return nil
}

// Polls returns how many Poll calls reported the process as running.
func (p *MockProcess) Polls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.polls
}

// Signals returns the signals delivered so far.
func (p *MockProcess) Signals() []os.Signal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]os.Signal(nil), p.signals...)
}
