package secretkey

import "errors"

var (
	// ErrInvalidLength is returned when the requested secret length is not positive.
	ErrInvalidLength = errors.New("secret length must be positive")
	// ErrGenerationFailed wraps a failure of the system random source.
	ErrGenerationFailed = errors.New("failed to generate secret key")
)
