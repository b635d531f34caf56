// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for tag-driven parsing. Load caches one parsed
// copy per struct type for the lifetime of the process; Parse is the uncached
// variant and accepts a fixed environment map for tests.
//
//	type Config struct {
//		StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
