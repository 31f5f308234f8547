package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	bqr "github.com/boombuler/barcode/qr"
	skipqrcode "github.com/skip2/go-qrcode"
)

// Encoder renders strings as QR code PNG images. It is immutable and safe for
// concurrent use.
type Encoder struct {
	cfg Config
}

var defaultEncoder = &Encoder{cfg: DefaultConfig()}

// New returns an Encoder built from DefaultConfig with opts applied.
func New(opts ...Option) (*Encoder, error) {
	return NewFromConfig(DefaultConfig(), opts...)
}

// NewFromConfig returns an Encoder for cfg with opts applied. Nil colours
// fall back to black on white, so a Config loaded from the environment can be
// passed as is.
func NewFromConfig(cfg Config, opts ...Option) (*Encoder, error) {
	if cfg.Foreground == nil {
		cfg.Foreground = color.Black
	}
	if cfg.Background == nil {
		cfg.Background = color.White
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Encoder{cfg: cfg}, nil
}

// Config returns a copy of the encoder settings.
func (e *Encoder) Config() Config {
	return e.cfg
}

// Encode returns a PNG image of the QR code for data, using the default
// encoder settings.
func Encode(data string) ([]byte, error) {
	return defaultEncoder.Encode(data)
}

// Encode returns a PNG image of the QR code for data. Each module is drawn as
// a BoxSize square and the symbol is surrounded by Border modules of
// background. Output is deterministic for a given input and configuration.
func (e *Encoder) Encode(data string) ([]byte, error) {
	modules, err := e.symbol(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, e.rasterize(modules)); err != nil {
		return nil, errors.Join(ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64Image returns the PNG as a data URI that can be used directly
// in an <img> tag:
//
//	<img src="{{.QrCode}}">
func (e *Encoder) EncodeBase64Image(data string) (string, error) {
	img, err := e.Encode(data)
	if err != nil {
		return "", err
	}
	return DataURI(img), nil
}

// DataURI wraps PNG bytes in a data:image/png;base64 URI.
func DataURI(png []byte) string {
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png))
}

// Bitmap returns the module grid for data including the quiet zone, indexed
// [row][column]. True marks a dark module.
func (e *Encoder) Bitmap(data string) ([][]bool, error) {
	modules, err := e.symbol(data)
	if err != nil {
		return nil, err
	}

	border := e.cfg.Border
	side := len(modules) + 2*border
	out := make([][]bool, side)
	for y := range out {
		out[y] = make([]bool, side)
	}
	for y, row := range modules {
		copy(out[y+border][border:], row)
	}
	return out, nil
}

// symbol builds the module grid without quiet zone.
func (e *Encoder) symbol(data string) ([][]bool, error) {
	// skip2/go-qrcode refuses empty content.
	if data == "" {
		return emptySymbol(e.cfg.Level)
	}

	q, err := skipqrcode.New(data, e.cfg.Level.skip())
	if err != nil {
		// Byte mode accepts any input, so the only failure left is size.
		return nil, errors.Join(ErrCapacityExceeded, err)
	}
	if q.VersionNumber < e.cfg.Version {
		q, err = skipqrcode.NewWithForcedVersion(data, e.cfg.Version, e.cfg.Level.skip())
		if err != nil {
			return nil, errors.Join(ErrEncodingFailure, err)
		}
	}
	q.DisableBorder = true

	return q.Bitmap(), nil
}

// emptySymbol encodes a zero-length byte segment into the smallest symbol.
func emptySymbol(level RecoveryLevel) ([][]bool, error) {
	code, err := bqr.Encode("", level.barcode(), bqr.Unicode)
	if err != nil {
		return nil, errors.Join(ErrEncodingFailure, err)
	}

	b := code.Bounds()
	modules := make([][]bool, b.Dy())
	for y := range modules {
		modules[y] = make([]bool, b.Dx())
		for x := range modules[y] {
			r, g, bl, _ := code.At(b.Min.X+x, b.Min.Y+y).RGBA()
			modules[y][x] = r+g+bl < 3*0x8000
		}
	}
	return modules, nil
}

// rasterize draws modules onto a two-colour paletted image.
func (e *Encoder) rasterize(modules [][]bool) image.Image {
	box, border := e.cfg.BoxSize, e.cfg.Border
	side := (len(modules) + 2*border) * box

	// Palette index 0 is the background, so the zeroed image starts blank.
	img := image.NewPaletted(image.Rect(0, 0, side, side), color.Palette{e.cfg.Background, e.cfg.Foreground})

	for y, row := range modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0, y0 := (x+border)*box, (y+border)*box
			for dy := 0; dy < box; dy++ {
				off := img.PixOffset(x0, y0+dy)
				for dx := 0; dx < box; dx++ {
					img.Pix[off+dx] = 1
				}
			}
		}
	}
	return img
}
