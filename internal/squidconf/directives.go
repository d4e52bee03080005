package squidconf

import (
	"fmt"

	"github.com/firefly-engineering/squid-in-a-can/internal/config"
)

// Directives returns the generated directive set in the order squid reads
// it. Later directives may override earlier ones, so order is significant.
func Directives(opts *config.Options, settings *config.Settings) []string {
	directives := []string{
		"http_port " + settings.Squid.HTTPPort,
		fmt.Sprintf("maximum_object_size %d MB", opts.MaximumCacheObjectMB),
		CacheDir(opts, settings),
	}

	if parent := opts.ParentProxy; parent != nil {
		directives = append(directives, CachePeer(parent), "never_direct allow all")
	}

	return directives
}

// CacheDir returns the ufs cache_dir directive.
func CacheDir(opts *config.Options, settings *config.Settings) string {
	return fmt.Sprintf("cache_dir ufs %s %d %d %d",
		settings.Paths.CacheDir, opts.DiskCacheSizeMB, settings.Squid.CacheL1, settings.Squid.CacheL2)
}

// CachePeer returns the cache_peer directive for the parent proxy. The
// decoded password is embedded as is.
func CachePeer(parent *config.ParentProxy) string {
	line := fmt.Sprintf("cache_peer %s parent %d 0 no-query no-digest", parent.Host, parent.Port)
	if parent.HasLogin() {
		line += fmt.Sprintf(" login=%s:%s", parent.Username, parent.Password)
	}
	return line
}
