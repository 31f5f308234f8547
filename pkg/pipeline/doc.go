// Package pipeline composes payload building and QR encoding.
//
//	data, png, err := pipeline.Run("http://localhost:8080/", secret)
//
// Run is a plain sequence of payload.Build and qrcode.Encoder.Encode with no
// retries; an encoder error is returned as is, so errors.Is checks against
// qrcode sentinels keep working. A configured Pipeline adds an encoder of
// choice, opt-in validation and debug logging.
package pipeline
