package qrcode

import (
	"fmt"
	"image/color"
	"strings"

	bqr "github.com/boombuler/barcode/qr"
	skipqrcode "github.com/skip2/go-qrcode"
)

// RecoveryLevel is the QR error-correction level.
type RecoveryLevel int

const (
	// Low recovers about 7% of symbol damage and gives the largest capacity.
	Low RecoveryLevel = iota
	// Medium recovers about 15%.
	Medium
	// High recovers about 25%.
	High
	// Highest recovers about 30%.
	Highest
)

const (
	maxVersion     = 40
	defaultBoxSize = 10
	defaultBorder  = 4
)

// String returns the single-letter QR name of the level (L, M, Q, H).
func (l RecoveryLevel) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "Q"
	case Highest:
		return "H"
	default:
		return fmt.Sprintf("RecoveryLevel(%d)", int(l))
	}
}

// UnmarshalText parses L/M/Q/H or low/medium/high/highest, case-insensitive.
func (l *RecoveryLevel) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "l", "low":
		*l = Low
	case "m", "medium":
		*l = Medium
	case "q", "high":
		*l = High
	case "h", "highest":
		*l = Highest
	default:
		return fmt.Errorf("%w: unknown recovery level %q", ErrInvalidConfig, string(text))
	}
	return nil
}

func (l RecoveryLevel) valid() bool {
	return l >= Low && l <= Highest
}

func (l RecoveryLevel) skip() skipqrcode.RecoveryLevel {
	switch l {
	case Medium:
		return skipqrcode.Medium
	case High:
		return skipqrcode.High
	case Highest:
		return skipqrcode.Highest
	default:
		return skipqrcode.Low
	}
}

func (l RecoveryLevel) barcode() bqr.ErrorCorrectionLevel {
	switch l {
	case Medium:
		return bqr.M
	case High:
		return bqr.Q
	case Highest:
		return bqr.H
	default:
		return bqr.L
	}
}

// Config holds encoder settings. Colours cannot be set from the environment.
type Config struct {
	// Version is the minimum symbol version; the encoder grows it to fit the data. 0 means auto.
	// Empty data is always encoded as version 1 regardless of this value.
	Version int `env:"QR_VERSION" envDefault:"1"`
	// Level is the error-correction level.
	Level RecoveryLevel `env:"QR_LEVEL" envDefault:"L"`
	// BoxSize is the side of one module in pixels.
	BoxSize int `env:"QR_BOX_SIZE" envDefault:"10"`
	// Border is the quiet zone width in modules.
	Border int `env:"QR_BORDER" envDefault:"4"`

	Foreground color.Color `env:"-"`
	Background color.Color `env:"-"`
}

// DefaultConfig returns version 1 with auto-fit, level L, 10px modules,
// a 4-module quiet zone, black on white.
func DefaultConfig() Config {
	return Config{
		Version:    1,
		Level:      Low,
		BoxSize:    defaultBoxSize,
		Border:     defaultBorder,
		Foreground: color.Black,
		Background: color.White,
	}
}

func (c Config) validate() error {
	switch {
	case c.Version < 0 || c.Version > maxVersion:
		return fmt.Errorf("%w: version must be within 0..%d, got %d", ErrInvalidConfig, maxVersion, c.Version)
	case !c.Level.valid():
		return fmt.Errorf("%w: unknown recovery level %d", ErrInvalidConfig, int(c.Level))
	case c.BoxSize < 1:
		return fmt.Errorf("%w: box size must be positive, got %d", ErrInvalidConfig, c.BoxSize)
	case c.Border < 0:
		return fmt.Errorf("%w: border must not be negative, got %d", ErrInvalidConfig, c.Border)
	case c.Foreground == nil || c.Background == nil:
		return fmt.Errorf("%w: colours must be set", ErrInvalidConfig)
	}
	return nil
}

// Option configures an Encoder.
type Option func(*Config)

// WithVersion sets the minimum symbol version. It has no effect on empty data.
func WithVersion(v int) Option {
	return func(c *Config) { c.Version = v }
}

// WithLevel sets the error-correction level.
func WithLevel(l RecoveryLevel) Option {
	return func(c *Config) { c.Level = l }
}

// WithBoxSize sets the pixel size of one module.
func WithBoxSize(px int) Option {
	return func(c *Config) { c.BoxSize = px }
}

// WithBorder sets the quiet zone width in modules.
func WithBorder(modules int) Option {
	return func(c *Config) { c.Border = modules }
}

// WithColors sets foreground and background colours. Nil values are ignored.
func WithColors(fg, bg color.Color) Option {
	return func(c *Config) {
		if fg != nil {
			c.Foreground = fg
		}
		if bg != nil {
			c.Background = bg
		}
	}
}
