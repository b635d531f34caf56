package main

import (
	"github.com/dmitrymomot/registro/internal/httpapi"
	"github.com/dmitrymomot/registro/pkg/httpserver"
	"github.com/dmitrymomot/registro/pkg/ratelimiter"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Name        string `env:"APP_NAME" envDefault:"registro"`
	LogLevel    string `env:"LOG_LEVEL"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"` // StoreDriver is one of memory, postgres, redis.
	HomeRoute   string `env:"HOME_ROUTE" envDefault:"/home"`
	BcryptCost  int    `env:"BCRYPT_COST" envDefault:"10"`
	Metrics     bool   `env:"METRICS_ENABLED" envDefault:"true"` // Metrics serves /metrics.

	HTTP      httpserver.Config
	API       httpapi.Config
	RateLimit ratelimiter.Config
}
