package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/firefly-engineering/squid-in-a-can/internal/config"
	"github.com/firefly-engineering/squid-in-a-can/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	Root     string
	Settings *config.Settings
	Env      map[string]string
}

// NewTestEnv creates a temporary root containing the template fixture and
// settings whose paths all live under it.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()

	settings := config.DefaultSettings()
	settings.Paths = config.Paths{
		Template: filepath.Join(root, "etc", "squid3", "squid.conf.in"),
		Config:   filepath.Join(root, "etc", "squid3", "squid.conf"),
		PIDFile:  filepath.Join(root, "run", "squid3.pid"),
		CacheDir: filepath.Join(root, "var", "cache", "squid3"),
	}
	FastTiming(settings)

	for _, dir := range []string{
		filepath.Dir(settings.Paths.Template),
		filepath.Dir(settings.Paths.PIDFile),
		settings.Paths.CacheDir,
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(settings.Paths.Template, Template(), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	return &TestEnv{
		T:        t,
		Root:     root,
		Settings: settings,
		Env:      make(map[string]string),
	}
}

// Setenv sets a variable in the environment seen through Lookup.
func (e *TestEnv) Setenv(key, value string) {
	e.Env[key] = value
}

// Lookup implements config.LookupFunc over Env.
func (e *TestEnv) Lookup(key string) (string, bool) {
	v, ok := e.Env[key]
	return v, ok
}

// ReadConfig returns the rendered squid.conf.
func (e *TestEnv) ReadConfig() string {
	e.T.Helper()
	data, err := os.ReadFile(e.Settings.Paths.Config)
	if err != nil {
		e.T.Fatalf("Failed to read rendered config: %v", err)
	}
	return string(data)
}

// FastTiming shortens every interval so supervision loops finish quickly.
func FastTiming(s *config.Settings) {
	s.Timing = config.Timing{
		PollInterval:      config.Duration{Duration: time.Millisecond},
		CacheWaitTimeout:  config.Duration{Duration: 50 * time.Millisecond},
		CachePollInterval: config.Duration{Duration: time.Millisecond},
	}
}

// MapLookup returns a config.LookupFunc reading from env.
func MapLookup(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// NewMockFS returns a MockFS holding the template at the settings' path.
func NewMockFS(settings *config.Settings) *system.MockFS {
	fs := system.NewMockFS()
	fs.AddFile(settings.Paths.Template, Template(), 0644)
	return fs
}

// FastSettings returns default settings with FastTiming applied.
func FastSettings() *config.Settings {
	s := config.DefaultSettings()
	FastTiming(s)
	return s
}
