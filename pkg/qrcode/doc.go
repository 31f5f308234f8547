// Package qrcode renders strings as QR code images, either as raw PNG bytes,
// as a data-URI string that can be embedded directly into HTML pages, or as
// Unicode art for a terminal.
//
// The package wraps github.com/skip2/go-qrcode for symbol construction
// (mode selection, error-correction codewords, mask selection) and draws the
// resulting module grid itself, so module size, quiet zone and colours are
// configurable independently of the upstream library. Empty content, which
// the upstream library refuses, is encoded with github.com/boombuler/barcode.
// Terminal output uses github.com/mdp/qrterminal/v3.
//
// # Configuration
//
// DefaultConfig matches the classic authentication-QR settings: version 1
// growing to fit the data, recovery level L, 10 pixels per module, a
// 4-module quiet zone, black on white. Config carries env tags, so it can be
// loaded with the config package and passed to NewFromConfig.
//
// # Usage
//
//	import "github.com/dmitrymomot/authqr/pkg/qrcode"
//
//	// PNG bytes with default settings
//	img, err := qrcode.Encode(`{"url":"http://localhost:8080/","secret_key":"abc123"}`)
//	if err != nil {
//		// handle error
//	}
//
//	// Custom encoder
//	enc, err := qrcode.New(qrcode.WithLevel(qrcode.Medium), qrcode.WithBoxSize(8))
//	if err != nil {
//		// handle error
//	}
//	dataURI, err := enc.EncodeBase64Image("https://example.com")
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   - ErrCapacityExceeded – the content does not fit a version 40 symbol.
//   - ErrEncodingFailure  – the symbol or PNG could not be produced.
//   - ErrInvalidConfig    – encoder settings are out of range.
//
// Use errors.Is for comparisons.
package qrcode
