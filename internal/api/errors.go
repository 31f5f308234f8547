package api

import (
	"errors"
	"net/http"
)

// HTTPError pairs a status code with a machine-readable error code.
type HTTPError struct {
	Status int
	Code   string
}

func (e HTTPError) Error() string {
	return e.Code
}

var (
	ErrBadRequest            = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrNotFound              = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrMethodNotAllowed      = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
	ErrRequestEntityTooLarge = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Status: http.StatusUnprocessableEntity, Code: "validation_error"}
	ErrCapacityExceeded      = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "capacity_exceeded"}
	ErrInternalServerError   = HTTPError{Status: http.StatusInternalServerError, Code: "internal_server_error"}
	ErrServiceUnavailable    = HTTPError{Status: http.StatusServiceUnavailable, Code: "service_unavailable"}
)

// Binding errors. Each maps to a 4xx response.
var (
	ErrMissingContentType = errors.New("missing content type")
	ErrWrongMediaType     = errors.New("unsupported media type")
	ErrInvalidJSON        = errors.New("invalid JSON")
	ErrBodyTooLarge       = errors.New("request body too large")
)
