package payload

import "errors"

var (
	// ErrInvalidArgument is returned by Validate when a field fails validation.
	// The joined validator.ValidationErrors carries per-field details.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPayload is returned by Parse for malformed input.
	ErrInvalidPayload = errors.New("invalid payload")
)
