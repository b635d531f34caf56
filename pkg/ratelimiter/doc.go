// Package ratelimiter implements a per-key token bucket and an HTTP
// middleware around it.
//
// Each key starts with Capacity tokens and regains RefillRate tokens every
// RefillInterval, never exceeding Capacity. Buckets idle for longer than
// IdleTTL are dropped lazily on later calls.
package ratelimiter
