package storage

import "errors"

var (
	ErrInvalidPath   = errors.New("invalid path") // Path escapes the storage root
	ErrInvalidConfig = errors.New("invalid storage configuration")

	ErrObjectNotFound = errors.New("object not found")
	ErrIsDirectory    = errors.New("path is a directory")

	// I/O operation errors, wrapped with the underlying cause.
	ErrFailedToWriteObject     = errors.New("failed to write object")
	ErrFailedToDeleteObject    = errors.New("failed to delete object")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToStatPath        = errors.New("failed to stat path")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// S3-specific errors.
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
