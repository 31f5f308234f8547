package main

import (
	"github.com/dmitrymomot/authqr/internal/server"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
	"github.com/dmitrymomot/authqr/pkg/storage"
)

// appConfig is loaded from the environment and an optional .env file.
type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"authqr"`
	LogLevel string `env:"LOG_LEVEL"`

	QR      qrcode.Config
	HTTP    server.Config
	Storage storage.Config
}
