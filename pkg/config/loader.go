package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache sync.Map // reflect.Type -> any (T value)

	dotenvOnce sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The default .env file is read once per process, if present, without
// overriding variables that are already set. Each config type is parsed once
// and later calls for the same type receive the cached copy.
//
//	type HTTP struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTP
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// Missing .env is fine; the process environment is authoritative.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	if err := Parse(v); err != nil {
		return err
	}

	actual, _ := cache.LoadOrStore(key, *v)
	*v = actual.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse parses the environment into v without touching the cache or .env files.
// Options can supply a fixed environment, which keeps tests hermetic.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	o := env.Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnvFiles reads the given .env files into the process environment.
// Variables that are already set win.
func LoadEnvFiles(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Meant for tests.
func Reset() {
	cache.Clear()
}

// Option tweaks how Parse reads the environment.
type Option func(*env.Options)

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// WithPrefix requires every variable name to start with prefix.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}
