package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authqr/internal/api"
	"github.com/dmitrymomot/authqr/internal/server"
	"github.com/dmitrymomot/authqr/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve QR code generation over HTTP",
		Long: `Start the HTTP API:

  POST /v1/payload   payload string and PNG data URI
  POST /v1/qr        PNG image
  GET  /health/live
  GET  /health/ready

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}

			router := api.NewRouter(
				api.WithEncoder(a.encoder),
				api.WithLogger(a.log.With(logger.Component("api"))),
				api.WithReadinessCheck(api.EncoderCheck(a.encoder)),
			)
			srv := server.NewFromConfig(cfg, server.WithLogger(a.log.With(logger.Component("server"))))
			return srv.Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
