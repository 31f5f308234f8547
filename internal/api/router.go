package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authqr/internal/requestid"
	"github.com/dmitrymomot/authqr/pkg/logger"
	"github.com/dmitrymomot/authqr/pkg/pipeline"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
)

// Option configures the router.
type Option func(*options)

type options struct {
	encoder *qrcode.Encoder
	log     *slog.Logger
	checks  []ReadinessCheck
}

// WithEncoder sets the QR encoder. The default encoder is used otherwise.
func WithEncoder(enc *qrcode.Encoder) Option {
	return func(o *options) {
		if enc != nil {
			o.encoder = enc
		}
	}
}

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithReadinessCheck adds a check run by GET /health/ready.
func WithReadinessCheck(check ReadinessCheck) Option {
	return func(o *options) {
		if check != nil {
			o.checks = append(o.checks, check)
		}
	}
}

// NewRouter returns the HTTP API:
//
//	POST /v1/payload   JSON payload and data URI image
//	POST /v1/qr        PNG image
//	GET  /health/live
//	GET  /health/ready
func NewRouter(opts ...Option) http.Handler {
	o := &options{log: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	h := &handler{
		pipeline: pipeline.New(o.encoder,
			pipeline.WithValidation(),
			pipeline.WithLogger(o.log.With(logger.Component("pipeline"))),
		),
		log:    o.log,
		checks: o.checks,
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requestLogger(o.log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, o.log, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, o.log, ErrMethodNotAllowed)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", h.live)
		r.Get("/ready", h.ready)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/payload", h.payload)
		r.Post("/qr", h.image)
	})

	return r
}
