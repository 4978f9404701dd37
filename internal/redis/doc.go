// Package redis provides the Redis-backed session store and client setup.
//
// The legacy service kept sessions in a process-local map with a note to use
// Redis in production; this package is that production path. Keys carry no
// TTL: sessions end only on explicit logout.
package redis
