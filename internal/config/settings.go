package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	shellquote "github.com/kballard/go-shellquote"
)

const (
	DefaultSettingsFile = "/etc/squid-in-a-can/bootstrap.toml"
	DefaultTemplatePath = "/etc/squid3/squid.conf.in"
	DefaultConfigPath   = "/etc/squid3/squid.conf"
	DefaultPIDFile      = "/run/squid3.pid"
	DefaultCacheDir     = "/var/cache/squid3"
	DefaultSquidCommand = "squid3"
	DefaultChownCommand = "chown"
	DefaultCacheOwner   = "proxy:proxy"
	DefaultHTTPPort     = "0.0.0.0:3129 intercept"
	DefaultCacheL1      = 16
	DefaultCacheL2      = 256
)

// Settings holds everything that is fixed per image rather than per
// deployment.
type Settings struct {
	Paths    Paths         `toml:"paths"`
	Commands Commands      `toml:"commands"`
	Squid    SquidSettings `toml:"squid"`
	Timing   Timing        `toml:"timing"`
}

// Commands names the external programs the bootstrap runs.
type Commands struct {
	Squid      string `toml:"squid"`
	Chown      string `toml:"chown"`
	CacheOwner string `toml:"cache_owner"`
}

// SquidSettings feeds the generated base directives.
type SquidSettings struct {
	HTTPPort string `toml:"http_port"`
	CacheL1  int    `toml:"cache_l1"` // first-level cache subdirectories
	CacheL2  int    `toml:"cache_l2"` // second-level cache subdirectories
}

// Timing holds the supervision intervals.
type Timing struct {
	// PollInterval is how often the running daemon is checked for exit.
	PollInterval Duration `toml:"poll_interval"`

	// CacheWaitTimeout bounds the wait for squid -z to lay out the cache.
	CacheWaitTimeout Duration `toml:"cache_wait_timeout"`

	// CachePollInterval is how often the cache layout is checked.
	CachePollInterval Duration `toml:"cache_poll_interval"`

	// GracePeriod is an extra fixed pause after cache initialization.
	GracePeriod Duration `toml:"grace_period"`
}

// Duration is a time.Duration written as a string ("1s", "250ms") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultSettings returns the settings for the stock squid3 image.
func DefaultSettings() *Settings {
	return &Settings{
		Paths: *DefaultPaths(),
		Commands: Commands{
			Squid:      DefaultSquidCommand,
			Chown:      DefaultChownCommand,
			CacheOwner: DefaultCacheOwner,
		},
		Squid: SquidSettings{
			HTTPPort: DefaultHTTPPort,
			CacheL1:  DefaultCacheL1,
			CacheL2:  DefaultCacheL2,
		},
		Timing: Timing{
			PollInterval:      Duration{time.Second},
			CacheWaitTimeout:  Duration{30 * time.Second},
			CachePollInterval: Duration{250 * time.Millisecond},
		},
	}
}

// LoadSettings reads settings from a TOML file on top of the defaults.
// A missing file is only an error when required is set.
func LoadSettings(path string, required bool) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	md, err := toml.DecodeFile(path, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if err := s.Paths.Validate(); err != nil {
		return err
	}

	if _, err := s.SquidArgv(); err != nil {
		return err
	}
	if _, err := s.ChownArgv(); err != nil {
		return err
	}
	if s.Commands.CacheOwner == "" {
		return fmt.Errorf("commands.cache_owner is required")
	}

	if s.Squid.HTTPPort == "" {
		return fmt.Errorf("squid.http_port is required")
	}
	if s.Squid.CacheL1 < 1 || s.Squid.CacheL2 < 1 {
		return fmt.Errorf("squid.cache_l1 and squid.cache_l2 must be positive")
	}

	if s.Timing.PollInterval.Duration <= 0 {
		return fmt.Errorf("timing.poll_interval must be positive")
	}
	if s.Timing.CachePollInterval.Duration <= 0 {
		return fmt.Errorf("timing.cache_poll_interval must be positive")
	}
	if s.Timing.CacheWaitTimeout.Duration < 0 || s.Timing.GracePeriod.Duration < 0 {
		return fmt.Errorf("timing.cache_wait_timeout and timing.grace_period must not be negative")
	}

	return nil
}

// SquidArgv returns the squid command split into an argument list.
func (s *Settings) SquidArgv() ([]string, error) {
	return splitCommand("commands.squid", s.Commands.Squid)
}

// ChownArgv returns the chown command split into an argument list.
func (s *Settings) ChownArgv() ([]string, error) {
	return splitCommand("commands.chown", s.Commands.Chown)
}

func splitCommand(key, command string) ([]string, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s is required", key)
	}
	return words, nil
}

// FirstLevelCacheDir is the directory squid -z creates first; its presence
// means the ufs layout exists.
func (s *Settings) FirstLevelCacheDir() string {
	return filepath.Join(s.Paths.CacheDir, "00")
}
