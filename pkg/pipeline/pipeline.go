package pipeline

import (
	"log/slog"

	"github.com/dmitrymomot/authqr/pkg/logger"
	"github.com/dmitrymomot/authqr/pkg/payload"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
)

// Result holds both artifacts of a run.
type Result struct {
	// Payload is the exact string encoded in the QR code.
	Payload string
	// Image is the PNG-encoded QR code.
	Image []byte
}

// Pipeline builds a payload and encodes it as a QR code.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	encoder  *qrcode.Encoder
	validate bool
	log      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithValidation makes Run reject invalid url or secret key values with
// payload.ErrInvalidArgument before encoding.
func WithValidation() Option {
	return func(p *Pipeline) { p.validate = true }
}

// WithLogger sets the logger used for debug output. Payload contents are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a Pipeline using enc, or the default encoder when enc is nil.
func New(enc *qrcode.Encoder, opts ...Option) *Pipeline {
	p := &Pipeline{
		encoder: enc,
		log:     logger.NewNop(),
	}
	if p.encoder == nil {
		p.encoder, _ = qrcode.New()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run builds the payload for url and secretKey and encodes it. Any failure is
// returned unchanged and no partial result is produced.
func (p *Pipeline) Run(url, secretKey string) (Result, error) {
	if p.validate {
		if err := payload.Validate(url, secretKey); err != nil {
			return Result{}, err
		}
	}

	data := payload.Build(url, secretKey)
	img, err := p.encoder.Encode(data)
	if err != nil {
		p.log.Debug("qr encoding failed", logger.PayloadBytes(len(data)), logger.Error(err))
		return Result{}, err
	}

	p.log.Debug("qr generated", logger.PayloadBytes(len(data)), logger.ImageBytes(len(img)))
	return Result{Payload: data, Image: img}, nil
}

var defaultPipeline = New(nil)

// Run builds the payload for url and secretKey, encodes it with the default
// encoder settings and returns both the payload string and the PNG bytes.
func Run(url, secretKey string) (string, []byte, error) {
	res, err := defaultPipeline.Run(url, secretKey)
	if err != nil {
		return "", nil, err
	}
	return res.Payload, res.Image, nil
}
