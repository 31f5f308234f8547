package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authqr/pkg/logger"
	"github.com/dmitrymomot/authqr/pkg/payload"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
	"github.com/dmitrymomot/authqr/pkg/validator"
)

// JSONResponse is the envelope for every JSON body.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

// errorToDetail maps err onto a status code and response detail.
func errorToDetail(err error) (int, *ErrorDetail) {
	var httpErr HTTPError
	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrInvalidJSON):
		return ErrBadRequest.Status, &ErrorDetail{Code: ErrBadRequest.Code, Message: err.Error()}
	case errors.Is(err, ErrWrongMediaType):
		return ErrUnsupportedMediaType.Status, &ErrorDetail{Code: ErrUnsupportedMediaType.Code, Message: err.Error()}
	case errors.Is(err, ErrBodyTooLarge):
		return ErrRequestEntityTooLarge.Status, &ErrorDetail{Code: ErrRequestEntityTooLarge.Code, Message: err.Error()}
	case errors.Is(err, payload.ErrInvalidArgument):
		detail := &ErrorDetail{Code: ErrUnprocessableEntity.Code, Message: payload.ErrInvalidArgument.Error()}
		if verrs := validator.ExtractValidationErrors(err); !verrs.IsEmpty() {
			detail.Details = verrs.Map()
		}
		return ErrUnprocessableEntity.Status, detail
	case errors.Is(err, qrcode.ErrCapacityExceeded):
		return ErrCapacityExceeded.Status, &ErrorDetail{Code: ErrCapacityExceeded.Code, Message: qrcode.ErrCapacityExceeded.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Status, &ErrorDetail{Code: httpErr.Code, Message: http.StatusText(httpErr.Status)}
	default:
		return ErrInternalServerError.Status, &ErrorDetail{Code: ErrInternalServerError.Code, Message: http.StatusText(http.StatusInternalServerError)}
	}
}

// writeError renders err as a JSON error body. Server errors are logged with
// the underlying cause, which is never sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	writeJSON(w, status, JSONResponse{Error: detail})
}
