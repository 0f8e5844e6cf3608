// Package config loads application configuration from environment
// variables. It wraps github.com/joho/godotenv and
// github.com/caarlos0/env/v11: a local .env file is read once per process
// (it is fine for the file to be absent), then the environment is parsed
// into any struct annotated with `env` field tags.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the destination struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)

var dotenvOnce sync.Once

// Load populates cfg from the process environment. A .env file in the
// working directory is loaded first if present; a missing file is not an
// error.
//
//	type Config struct {
//	    Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is a development convenience only.
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
