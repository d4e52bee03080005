package squidconf

import (
	"reflect"
	"strings"
	"testing"

	"github.com/firefly-engineering/squid-in-a-can/internal/config"
)

func defaultOptions() *config.Options {
	return &config.Options{
		MaximumCacheObjectMB: config.DefaultMaximumCacheObjectMB,
		DiskCacheSizeMB:      config.DefaultDiskCacheSizeMB,
	}
}

func TestDirectives_Defaults(t *testing.T) {
	got := Directives(defaultOptions(), config.DefaultSettings())

	want := []string{
		"http_port 0.0.0.0:3129 intercept",
		"maximum_object_size 1024 MB",
		"cache_dir ufs /var/cache/squid3 5000 16 256",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Directives() = %q, want %q", got, want)
	}
}

func TestDirectives_Overrides(t *testing.T) {
	opts := &config.Options{MaximumCacheObjectMB: 64, DiskCacheSizeMB: 250}
	settings := config.DefaultSettings()
	settings.Paths.CacheDir = "/srv/squid"
	settings.Squid.HTTPPort = "3128"

	got := Directives(opts, settings)

	want := []string{
		"http_port 3128",
		"maximum_object_size 64 MB",
		"cache_dir ufs /srv/squid 250 16 256",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Directives() = %q, want %q", got, want)
	}
}

func TestDirectives_ParentProxy(t *testing.T) {
	tests := []struct {
		name   string
		parent *config.ParentProxy
		want   []string
	}{
		{
			name:   "no parent",
			parent: nil,
			want:   nil,
		},
		{
			name:   "parent without login",
			parent: &config.ParentProxy{Host: "upstream", Port: 3128},
			want: []string{
				"cache_peer upstream parent 3128 0 no-query no-digest",
				"never_direct allow all",
			},
		},
		{
			name:   "parent with login",
			parent: &config.ParentProxy{Host: "upstream", Port: 8080, Username: "alice", Password: "s3cr3t"},
			want: []string{
				"cache_peer upstream parent 8080 0 no-query no-digest login=alice:s3cr3t",
				"never_direct allow all",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.ParentProxy = tt.parent

			got := Directives(opts, config.DefaultSettings())[3:]
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parent directives = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDirectives_NoParentMeansNoPeering(t *testing.T) {
	for _, line := range Directives(defaultOptions(), config.DefaultSettings()) {
		if strings.HasPrefix(line, "cache_peer") || strings.HasPrefix(line, "never_direct") {
			t.Errorf("unexpected directive without parent proxy: %q", line)
		}
	}
}

func TestCachePeer_NoLoginWithoutUsername(t *testing.T) {
	// A password without a username is never sent.
	line := CachePeer(&config.ParentProxy{Host: "upstream", Port: 3128, Password: "ignored"})
	if strings.Contains(line, "login=") {
		t.Errorf("CachePeer() = %q, want no login", line)
	}
}
