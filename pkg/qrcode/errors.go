package qrcode

import "errors"

var (
	// ErrCapacityExceeded is returned when the data does not fit the largest
	// QR version at the configured recovery level.
	ErrCapacityExceeded = errors.New("content exceeds QR code capacity")
	// ErrEncodingFailure is returned when the symbol or PNG could not be produced.
	ErrEncodingFailure = errors.New("failed to encode QR code")
	// ErrInvalidConfig is returned for out-of-range encoder settings.
	ErrInvalidConfig = errors.New("invalid QR encoder configuration")
)
