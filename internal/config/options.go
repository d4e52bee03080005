package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables recognised by LoadOptions.
const (
	EnvMaximumCacheObject  = "MAXIMUM_CACHE_OBJECT"
	EnvDiskCacheSize       = "DISK_CACHE_SIZE"
	EnvDirectivesOnly      = "SQUID_DIRECTIVES_ONLY"
	EnvDirectives          = "SQUID_DIRECTIVES"
	EnvParentProxyHost     = "PARENT_PROXY_HOST"
	EnvParentProxyPort     = "PARENT_PROXY_PORT"
	EnvParentProxyUsername = "PARENT_PROXY_USERNAME"
	EnvParentProxyPassword = "PARENT_PROXY_PASSWORD"
)

// Defaults, in megabytes.
const (
	DefaultMaximumCacheObjectMB = 1024
	DefaultDiskCacheSizeMB      = 5000
)

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ParentProxy is the upstream proxy every request is routed through.
type ParentProxy struct {
	Host     string
	Port     int
	Username string // empty means no credentials
	Password string // already base64-decoded
}

// HasLogin reports whether credentials should be sent to the parent.
func (p *ParentProxy) HasLogin() bool {
	return p.Username != ""
}

// Options holds the environment-derived settings for one bootstrap run.
type Options struct {
	MaximumCacheObjectMB int
	DiskCacheSizeMB      int

	// DirectivesOnly skips the template and the generated directives.
	DirectivesOnly bool

	// Directives is raw squid.conf text appended after everything else.
	Directives string

	// ParentProxy is nil when no upstream proxy is configured.
	ParentProxy *ParentProxy
}

// OptionsFromEnv loads Options from the process environment.
func OptionsFromEnv() (*Options, error) {
	return LoadOptions(os.LookupEnv)
}

// LoadOptions builds Options from lookup, applying defaults and validating
// every value.
func LoadOptions(lookup LookupFunc) (*Options, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	// Any non-empty value turns the mode on, including "0" and "false".
	only, _ := lookup(EnvDirectivesOnly)
	opts := &Options{
		DirectivesOnly: only != "",
	}

	var err error
	if opts.MaximumCacheObjectMB, err = megabytes(EnvMaximumCacheObject, get(EnvMaximumCacheObject), DefaultMaximumCacheObjectMB); err != nil {
		return nil, err
	}
	if opts.DiskCacheSizeMB, err = megabytes(EnvDiskCacheSize, get(EnvDiskCacheSize), DefaultDiskCacheSizeMB); err != nil {
		return nil, err
	}

	// Raw directives are kept verbatim, including surrounding whitespace.
	if v, ok := lookup(EnvDirectives); ok && v != "" {
		opts.Directives = v
	}

	if host := get(EnvParentProxyHost); host != "" {
		parent, err := loadParentProxy(host, get)
		if err != nil {
			return nil, err
		}
		opts.ParentProxy = parent
	}

	return opts, nil
}

func loadParentProxy(host string, get func(string) string) (*ParentProxy, error) {
	if strings.ContainsAny(host, " \t\r\n") {
		return nil, fmt.Errorf("%s must not contain whitespace (got %q)", EnvParentProxyHost, host)
	}

	rawPort := get(EnvParentProxyPort)
	if rawPort == "" {
		return nil, fmt.Errorf("%s is required when %s is set", EnvParentProxyPort, EnvParentProxyHost)
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("%s must be a port number between 1 and 65535 (got %q)", EnvParentProxyPort, rawPort)
	}

	parent := &ParentProxy{Host: host, Port: port}

	username := get(EnvParentProxyUsername)
	if username == "" {
		return parent, nil
	}
	if strings.ContainsAny(username, " \t\r\n:") {
		return nil, fmt.Errorf("%s must not contain whitespace or ':'", EnvParentProxyUsername)
	}

	encoded := get(EnvParentProxyPassword)
	if encoded == "" {
		return nil, fmt.Errorf("%s is required when %s is set", EnvParentProxyPassword, EnvParentProxyUsername)
	}
	password, err := decodePassword(encoded)
	if err != nil {
		return nil, fmt.Errorf("%s must be base64 encoded: %w", EnvParentProxyPassword, err)
	}
	// squid splits cache_peer options on whitespace.
	if strings.ContainsAny(password, " \t\r\n") {
		return nil, fmt.Errorf("%s must not decode to a value containing whitespace or line breaks", EnvParentProxyPassword)
	}

	parent.Username = username
	parent.Password = password
	return parent, nil
}

// decodePassword accepts padded and unpadded standard base64.
func decodePassword(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		var rawErr error
		if data, rawErr = base64.RawStdEncoding.DecodeString(encoded); rawErr != nil {
			return "", err
		}
	}
	return string(data), nil
}

func megabytes(key, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number of megabytes (got %q)", key, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive (got %d)", key, n)
	}
	return n, nil
}
