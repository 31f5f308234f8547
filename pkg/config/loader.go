package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes a single Parse call.
type Option func(*parseOptions)

type parseOptions struct {
	prefix      string
	environment map[string]string
	envFiles    []string
}

// WithPrefix requires every variable name to carry prefix, e.g. "AUTHQR_".
func WithPrefix(prefix string) Option {
	return func(o *parseOptions) { o.prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process
// environment. Handy in tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *parseOptions) { o.environment = vars }
}

// WithEnvFiles loads the given dotenv files before parsing. Variables already
// present in the process environment win over file values.
func WithEnvFiles(files ...string) Option {
	return func(o *parseOptions) { o.envFiles = append(o.envFiles, files...) }
}

// Parse fills v from the environment without caching.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load parses the environment into v once per configuration type and returns
// the cached copy afterwards. The .env file in the working directory is read
// on first use if it exists.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have parsed while we waited for the write lock.
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := Parse(&parsed); err != nil {
		return err
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset clears the cache so the next Load parses again.
func Reset() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
