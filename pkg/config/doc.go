// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for optional .env files:
//
//   - Parse fills a struct on every call and accepts options for a variable
//     prefix, an explicit environment map or extra dotenv files.
//   - Load parses once per struct type and serves a cached copy afterwards.
//   - MustLoad panics on failure for configuration the process needs to start.
//
// # Usage
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Parse(&cfg, config.WithPrefix("AUTHQR_")); err != nil {
//		// handle error
//	}
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be checked with errors.Is.
package config
