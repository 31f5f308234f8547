package server

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("server already running")
	// ErrClosed is joined with ErrStart when Run is called after Shutdown.
	ErrClosed = errors.New("server closed")
)
