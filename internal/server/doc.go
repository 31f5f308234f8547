// Package server runs the HTTP API with graceful shutdown.
//
// Run binds the listener before returning control to start hooks, so bind
// failures are reported synchronously and the real address is known even
// when the configured port is 0. The server stops when the context passed to
// Run is canceled, when SIGINT or SIGTERM arrives, or when Shutdown is called,
// and waits up to the shutdown timeout for in-flight requests.
//
//	srv := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Start failures are joined with ErrStart and drain failures with ErrShutdown.
package server
