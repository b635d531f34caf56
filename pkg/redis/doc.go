// Package redis connects to Redis with github.com/redis/go-redis/v9.
//
// Connect retries PING until the server is ready or the connect timeout
// elapses; Healthcheck adapts any go-redis client into a readiness check.
package redis
