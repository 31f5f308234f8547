package api_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authqr/internal/api"
	"github.com/dmitrymomot/authqr/internal/requestid"
	"github.com/dmitrymomot/authqr/pkg/logger"
	"github.com/dmitrymomot/authqr/pkg/payload"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

type errorBody struct {
	Error api.ErrorDetail `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorDetail {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestPayloadEndpoint(t *testing.T) {
	t.Parallel()
	router := api.NewRouter()

	rec := do(t, router, http.MethodPost, "/v1/payload", "application/json",
		`{"url":"http://localhost:8080/","secret_key":"abc123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	var body struct {
		Data api.PayloadResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, `{"url":"http://localhost:8080/","secret_key":"abc123"}`, body.Data.Payload)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(body.Data.Image, prefix))
	img, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(body.Data.Image, prefix))
	require.NoError(t, err)

	want, err := qrcode.Encode(body.Data.Payload)
	require.NoError(t, err)
	assert.Equal(t, want, img)
}

func TestQREndpoint(t *testing.T) {
	t.Parallel()
	router := api.NewRouter()

	rec := do(t, router, http.MethodPost, "/v1/qr", "application/json; charset=utf-8",
		`{"url":"https://example.com/login","secret_key":"s3cr3t"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	expected := payload.Build("https://example.com/login", "s3cr3t")
	assert.Equal(t, strconv.Itoa(len(expected)), rec.Header().Get(api.PayloadLengthHeader))

	body := rec.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, []byte(pngSignature)))
	assert.Equal(t, strconv.Itoa(len(body)), rec.Header().Get("Content-Length"))

	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestCustomEncoder(t *testing.T) {
	t.Parallel()
	enc, err := qrcode.New(qrcode.WithBoxSize(2), qrcode.WithBorder(0))
	require.NoError(t, err)
	router := api.NewRouter(api.WithEncoder(enc))

	rec := do(t, router, http.MethodPost, "/v1/qr", "application/json",
		`{"url":"http://a.io/","secret_key":"k"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	// A short payload fits in a version 2 or 3 symbol: 25 or 29 modules.
	assert.Contains(t, []int{50, 58}, img.Bounds().Dx())
}

func TestErrors(t *testing.T) {
	t.Parallel()
	router := api.NewRouter()

	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		status      int
		code        string
	}{
		{"missing content type", http.MethodPost, "/v1/payload", "", `{}`, http.StatusBadRequest, "bad_request"},
		{"wrong media type", http.MethodPost, "/v1/qr", "text/plain", `{}`, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"malformed json", http.MethodPost, "/v1/payload", "application/json", `{"url":`, http.StatusBadRequest, "bad_request"},
		{"empty body", http.MethodPost, "/v1/payload", "application/json", ``, http.StatusBadRequest, "bad_request"},
		{"unknown field", http.MethodPost, "/v1/payload", "application/json", `{"url":"http://a/","secret_key":"k","x":1}`, http.StatusBadRequest, "bad_request"},
		{"trailing data", http.MethodPost, "/v1/qr", "application/json", `{"url":"http://a/","secret_key":"k"} {}`, http.StatusBadRequest, "bad_request"},
		{"wrong field type", http.MethodPost, "/v1/qr", "application/json", `{"url":1,"secret_key":"k"}`, http.StatusBadRequest, "bad_request"},
		{"body too large", http.MethodPost, "/v1/payload", "application/json", `{"url":"` + strings.Repeat("a", api.MaxBodyBytes) + `"}`, http.StatusRequestEntityTooLarge, "request_entity_too_large"},
		{"not found", http.MethodGet, "/v1/missing", "", ``, http.StatusNotFound, "not_found"},
		{"method not allowed", http.MethodGet, "/v1/qr", "", ``, http.StatusMethodNotAllowed, "method_not_allowed"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, router, tt.method, tt.target, tt.contentType, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, tt.code, detail.Code)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	router := api.NewRouter()

	rec := do(t, router, http.MethodPost, "/v1/payload", "application/json",
		`{"url":"ftp://example.com/","secret_key":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, "validation_error", detail.Code)
	assert.Contains(t, detail.Details, "url")
	assert.Contains(t, detail.Details, "secret_key")
}

func TestCapacityExceeded(t *testing.T) {
	t.Parallel()
	router := api.NewRouter()

	// Both fields are within their limits but the payload does not fit.
	body, err := json.Marshal(api.GenerateRequest{
		URL:       "https://example.com/" + strings.Repeat("a", 2000),
		SecretKey: strings.Repeat("b", 1000),
	})
	require.NoError(t, err)

	rec := do(t, router, http.MethodPost, "/v1/qr", "application/json", string(body))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "capacity_exceeded", decodeError(t, rec).Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("live", func(t *testing.T) {
		t.Parallel()
		rec := do(t, api.NewRouter(), http.MethodGet, "/health/live", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"status":"alive"}}`, rec.Body.String())
	})

	t.Run("ready with encoder check", func(t *testing.T) {
		t.Parallel()
		enc, err := qrcode.New()
		require.NoError(t, err)
		rec := do(t, api.NewRouter(api.WithReadinessCheck(api.EncoderCheck(enc))), http.MethodGet, "/health/ready", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"status":"ready"}}`, rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		failing := func(context.Context) error { return errors.New("down") }
		rec := do(t, api.NewRouter(api.WithReadinessCheck(failing)), http.MethodGet, "/health/ready", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "service_unavailable", decodeError(t, rec).Code)
	})
}

func TestRequestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	router := api.NewRouter(api.WithLogger(log))

	req := httptest.NewRequest(http.MethodPost, "/v1/payload",
		strings.NewReader(`{"url":"http://localhost:8080/","secret_key":"super-secret-value"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestid.Header, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"http request"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.NotContains(t, out, "super-secret-value")
}
