package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseFailed is returned when environment variables cannot be parsed
// into the target struct.
var ErrParseFailed = errors.New("failed to parse environment variables")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> cached config value
)

// Load parses environment variables into cfg. The first call for a given
// type performs the parse and caches the result; subsequent calls for the
// same type return the cached value. A .env file in the working directory
// is loaded once, before the first parse, and never overrides variables
// already present in the environment.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Missing .env is not an error; explicit environment wins anyway.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %T: %w", ErrParseFailed, *cfg, err)
	}

	cache.Store(key, *cfg)
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
