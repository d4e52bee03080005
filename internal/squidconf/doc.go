// Package squidconf builds the squid.conf the bootstrap hands to squid.
//
// A rendered file has up to three parts, in this order:
//
//  1. the template (squid.conf.in) copied verbatim
//  2. the generated directives, one per line
//  3. the raw SQUID_DIRECTIVES block, verbatim
//
// Parts 1 and 2 are skipped in directives-only mode. The generated
// directives are:
//
//	http_port 0.0.0.0:3129 intercept
//	maximum_object_size <MAXIMUM_CACHE_OBJECT> MB
//	cache_dir ufs <cache dir> <DISK_CACHE_SIZE> 16 256
//	cache_peer <host> parent <port> 0 no-query no-digest [login=<user>:<pass>]
//	never_direct allow all
//
// where the last two only appear when a parent proxy is configured.
//
// Anything shown to an operator goes through HidePassword first.
package squidconf
