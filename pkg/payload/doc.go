// Package payload builds the JSON string carried by an authentication QR code.
//
// The serialized form is a compact JSON object with exactly two keys in a
// fixed order:
//
//	{"url":"http://localhost:8080/","secret_key":"abc123"}
//
// Build is deterministic and accepts any strings. Validate is an opt-in check
// for callers that receive untrusted input, and Parse is the strict inverse
// of Build.
//
// # Usage
//
//	s := payload.Build("http://localhost:8080/", secret)
//
//	if err := payload.Validate(url, secret); err != nil {
//		// errors.Is(err, payload.ErrInvalidArgument)
//	}
package payload
