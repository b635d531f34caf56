package ratelimiter

import (
	"fmt"
	"time"
)

type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"20"`        // Capacity is the burst size.
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`      // RefillRate is the number of tokens added per interval.
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"3s"` // RefillInterval is how often tokens are added.
	IdleTTL        time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"1h"`        // IdleTTL drops buckets untouched for longer.
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
