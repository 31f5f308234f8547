// Package logger provides a context-aware factory around log/slog with
// functional options and helper attribute constructors.
//
// New builds a text or JSON handler, applies static attributes and wraps the
// result with LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record (for example to inject the request ID).
//
// Logs go to stderr by default; command output owns stdout.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "authqr"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.Info("qr generated", logger.PayloadBytes(len(data)), logger.ImageBytes(len(img)))
//
// Helpers such as Error, RequestID and PayloadBytes keep attribute names
// consistent. Never log payload strings: they carry the secret key.
package logger
