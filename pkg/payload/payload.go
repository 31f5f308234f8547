package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Payload is the record encoded into an authentication QR code.
// Field order defines key order in the serialized form.
type Payload struct {
	URL       string `json:"url"`
	SecretKey string `json:"secret_key"`
}

// Build returns the compact JSON form of {"url":url,"secret_key":secretKey}.
// Any string is accepted, including empty strings. The output is the exact
// string a QR code carries, so it must stay byte-stable: no whitespace and
// no HTML escaping of <, > or &. Inputs must be valid UTF-8: invalid bytes
// are replaced with U+FFFD, so Parse would not return the original values.
// Validate rejects such input.
func Build(url, secretKey string) string {
	return Payload{URL: url, SecretKey: secretKey}.String()
}

// String returns the compact JSON serialization of p.
func (p Payload) String() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a struct of two strings cannot fail.
	_ = enc.Encode(p)
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// Parse decodes a serialized payload. Unknown keys, missing keys and trailing
// data are rejected.
func Parse(s string) (Payload, error) {
	var raw struct {
		URL       *string `json:"url"`
		SecretKey *string `json:"secret_key"`
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Payload{}, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidPayload)
	}

	if raw.URL == nil {
		return Payload{}, fmt.Errorf("%w: missing key %q", ErrInvalidPayload, "url")
	}
	if raw.SecretKey == nil {
		return Payload{}, fmt.Errorf("%w: missing key %q", ErrInvalidPayload, "secret_key")
	}

	return Payload{URL: *raw.URL, SecretKey: *raw.SecretKey}, nil
}
