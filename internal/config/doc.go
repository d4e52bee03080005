// Package config provides configuration types and loading for squid-in-a-can.
//
// # Sources
//
// Two kinds of configuration are handled:
//
//   - Options: the per-deployment knobs, read once from the environment
//     (MAXIMUM_CACHE_OBJECT, DISK_CACHE_SIZE, SQUID_DIRECTIVES_ONLY,
//     SQUID_DIRECTIVES and the PARENT_PROXY_* family).
//   - Settings: fixed paths, external command names, the listen directive
//     and timing. Defaults match the stock squid3 image layout; an optional
//     TOML file (DefaultSettingsFile) may override any of them.
//
// # Options
//
//	opts, err := config.LoadOptions(os.LookupEnv)
//
// LoadOptions applies defaults for unset or empty variables and rejects
// values that cannot be rendered into squid.conf: non-numeric sizes, a
// parent host without a usable port, credentials containing line breaks.
//
// PARENT_PROXY_PASSWORD is base64 encoded so it does not show up in clear
// text in `docker inspect` output or over someone's shoulder. This is
// obscurity, not encryption; the decoded value ends up verbatim in
// squid.conf.
//
// # Settings
//
//	[paths]
//	template  = "/etc/squid3/squid.conf.in"
//	config    = "/etc/squid3/squid.conf"
//	pid_file  = "/run/squid3.pid"
//	cache_dir = "/var/cache/squid3"
//
//	[commands]
//	squid       = "squid3"
//	chown       = "chown"
//	cache_owner = "proxy:proxy"
//
//	[squid]
//	http_port = "0.0.0.0:3129 intercept"
//	cache_l1  = 16
//	cache_l2  = 256
//
//	[timing]
//	poll_interval       = "1s"
//	cache_wait_timeout  = "30s"
//	cache_poll_interval = "250ms"
//	grace_period        = "0s"
//
// Command strings are split into argument lists with POSIX shell word rules
// and executed directly, never through a shell.
package config
