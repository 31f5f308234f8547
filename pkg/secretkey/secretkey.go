package secretkey

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// DefaultLength is the number of random bytes used by the demo driver.
// It encodes to 86 characters.
const DefaultLength = 64

// Generate returns n cryptographically random bytes encoded with the
// URL-safe base64 alphabet without padding.
func Generate(n int) (string, error) {
	return generate(rand.Reader, n)
}

func generate(r io.Reader, n int) (string, error) {
	if n < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
