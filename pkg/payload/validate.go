package payload

import (
	"errors"

	"github.com/dmitrymomot/authqr/pkg/validator"
)

const (
	// MaxURLLength bounds the url field accepted by Validate.
	MaxURLLength = 2048
	// MaxSecretKeyLength bounds the secret_key field accepted by Validate.
	MaxSecretKeyLength = 1024
)

var allowedSchemes = []string{"http", "https"}

// Validate checks the payload fields. Build does not call it; callers opt in.
func (p Payload) Validate() error {
	err := validator.Apply(
		validator.RequiredString("url", p.URL),
		validator.ValidUTF8("url", p.URL),
		validator.ValidURLWithScheme("url", p.URL, allowedSchemes),
		validator.MaxLenString("url", p.URL, MaxURLLength),
		validator.RequiredString("secret_key", p.SecretKey),
		validator.ValidUTF8("secret_key", p.SecretKey),
		validator.NoControlChars("secret_key", p.SecretKey),
		validator.MaxLenString("secret_key", p.SecretKey, MaxSecretKeyLength),
	)
	if err != nil {
		return errors.Join(ErrInvalidArgument, err)
	}
	return nil
}

// Validate is shorthand for Payload{URL: url, SecretKey: secretKey}.Validate().
func Validate(url, secretKey string) error {
	return Payload{URL: url, SecretKey: secretKey}.Validate()
}
