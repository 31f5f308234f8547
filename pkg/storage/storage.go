package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ContentTypePNG is the content type of QR code images.
const ContentTypePNG = "image/png"

// Object describes a stored artifact.
type Object struct {
	Path        string // Path relative to the storage root (or the S3 key)
	Size        int64
	ContentType string
	// Location is an absolute filesystem path for local storage or an
	// s3://bucket/key URI.
	Location string
}

// Storage writes generated artifacts to a backend.
type Storage interface {
	// Put stores data under path, replacing any existing object.
	Put(ctx context.Context, path string, data []byte, contentType string) (*Object, error)
	// Exists reports whether an object exists at path.
	Exists(ctx context.Context, path string) bool
	// Delete removes the object at path.
	Delete(ctx context.Context, path string) error
	// URL returns the public URL for path.
	URL(path string) string
}

// Driver names accepted by Config.Driver.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures a storage backend from the environment.
type Config struct {
	Driver  string        `env:"STORAGE_DRIVER" envDefault:"local"`
	BaseURL string        `env:"STORAGE_BASE_URL"`
	Timeout time.Duration `env:"STORAGE_TIMEOUT" envDefault:"30s"`

	LocalDir string `env:"STORAGE_LOCAL_DIR" envDefault:"."`

	S3Bucket         string `env:"STORAGE_S3_BUCKET"`
	S3Region         string `env:"STORAGE_S3_REGION"`
	S3AccessKeyID    string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"STORAGE_S3_SECRET_KEY"`
	S3Endpoint       string `env:"STORAGE_S3_ENDPOINT"`
	S3ForcePathStyle bool   `env:"STORAGE_S3_FORCE_PATH_STYLE"`
}

// New builds the backend named by cfg.Driver. S3 options are only used by the
// s3 driver.
func New(ctx context.Context, cfg Config, s3opts ...S3Option) (Storage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverLocal:
		var opts []LocalOption
		if cfg.Timeout > 0 {
			opts = append(opts, WithLocalWriteTimeout(cfg.Timeout))
		}
		st, err := NewLocalStorage(cfg.LocalDir, cfg.BaseURL, opts...)
		if err != nil {
			return nil, err
		}
		return st, nil
	case DriverS3:
		if cfg.Timeout > 0 {
			s3opts = append([]S3Option{WithS3UploadTimeout(cfg.Timeout)}, s3opts...)
		}
		st, err := NewS3Storage(ctx, S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			BaseURL:        cfg.BaseURL,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, s3opts...)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}
