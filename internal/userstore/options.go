package userstore

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/registro/pkg/logger"
)

type options struct {
	log        *slog.Logger
	bcryptCost int
}

// Option configures a store.
type Option func(*options)

// WithLogger sets the store logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithBcryptCost sets the password hashing cost.
// Values outside bcrypt's range fall back to bcrypt.DefaultCost.
func WithBcryptCost(cost int) Option {
	return func(o *options) {
		o.bcryptCost = cost
	}
}

func newOptions(component string, opts []Option) options {
	o := options{
		log:        logger.Discard(),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bcryptCost < bcrypt.MinCost || o.bcryptCost > bcrypt.MaxCost {
		o.bcryptCost = bcrypt.DefaultCost
	}
	o.log = o.log.With(logger.Component(component))
	return o
}
