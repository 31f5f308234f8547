package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/authqr/pkg/logger"
	"github.com/dmitrymomot/authqr/pkg/pipeline"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
)

// PayloadLengthHeader carries the byte length of the encoded payload on
// image responses.
const PayloadLengthHeader = "X-Auth-Payload-Length"

// ReadinessCheck reports whether a dependency is usable.
type ReadinessCheck func(ctx context.Context) error

// GenerateRequest is the body accepted by the generation endpoints.
type GenerateRequest struct {
	URL       string `json:"url"`
	SecretKey string `json:"secret_key"`
}

// PayloadResponse is returned by POST /v1/payload.
type PayloadResponse struct {
	Payload string `json:"payload"`
	Image   string `json:"image"`
}

type handler struct {
	pipeline *pipeline.Pipeline
	log      *slog.Logger
	checks   []ReadinessCheck
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request) (pipeline.Result, bool) {
	var req GenerateRequest
	if err := bindJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return pipeline.Result{}, false
	}

	res, err := h.pipeline.Run(req.URL, req.SecretKey)
	if err != nil {
		writeError(w, r, h.log, err)
		return pipeline.Result{}, false
	}
	return res, true
}

// payload handles POST /v1/payload.
func (h *handler) payload(w http.ResponseWriter, r *http.Request) {
	res, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, JSONResponse{Data: PayloadResponse{
		Payload: res.Payload,
		Image:   qrcode.DataURI(res.Image),
	}})
}

// image handles POST /v1/qr.
func (h *handler) image(w http.ResponseWriter, r *http.Request) {
	res, ok := h.decode(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Image)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(PayloadLengthHeader, strconv.Itoa(len(res.Payload)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Image); err != nil {
		h.log.DebugContext(r.Context(), "response write failed", logger.Error(err))
	}
}

func (h *handler) live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, JSONResponse{Data: map[string]string{"status": "alive"}})
}

func (h *handler) ready(w http.ResponseWriter, r *http.Request) {
	for _, check := range h.checks {
		if err := check(r.Context()); err != nil {
			h.log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
			writeJSON(w, ErrServiceUnavailable.Status, JSONResponse{Error: &ErrorDetail{
				Code:    ErrServiceUnavailable.Code,
				Message: http.StatusText(ErrServiceUnavailable.Status),
			}})
			return
		}
	}
	writeJSON(w, http.StatusOK, JSONResponse{Data: map[string]string{"status": "ready"}})
}

// EncoderCheck verifies that enc can still render a symbol.
func EncoderCheck(enc *qrcode.Encoder) ReadinessCheck {
	return func(context.Context) error {
		_, err := enc.Encode("ready")
		return err
	}
}
