package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the part of the S3 API needed to publish and retire QR images.
// *s3.Client satisfies it; tests pass a mock through WithS3Client.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage keeps generated QR images in a bucket and hands out their public
// URLs. Safe for concurrent use.
type S3Storage struct {
	client        S3Client
	bucket        string
	baseURL       string
	uploadTimeout time.Duration
}

// S3Config locates the bucket that receives QR images.
type S3Config struct {
	Bucket      string
	Region      string
	AccessKeyID string
	SecretKey   string
	// Endpoint points at MinIO or another S3-compatible server.
	Endpoint string
	// BaseURL prefixes object keys in URL. Derived from Endpoint or the
	// AWS virtual-host form when empty.
	BaseURL        string
	ForcePathStyle bool
}

// S3Option tunes how NewS3Storage reaches the bucket.
type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	httpClient    *http.Client
	loadOptions   []func(*config.LoadOptions) error
	clientOptions []func(*s3.Options)
	uploadTimeout time.Duration
}

// WithS3Client uses client as is; credentials and endpoint settings are ignored.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// WithHTTPClient routes S3 requests through client.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = client }
}

// WithS3ConfigOption appends an option for config.LoadDefaultConfig.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) { o.loadOptions = append(o.loadOptions, option) }
}

// WithS3ClientOption appends an option applied after endpoint and path-style settings.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) { o.clientOptions = append(o.clientOptions, option) }
}

// WithS3UploadTimeout caps the time spent uploading one image. Zero leaves
// the caller's deadline in charge.
func WithS3UploadTimeout(timeout time.Duration) S3Option {
	return func(o *s3Options) { o.uploadTimeout = timeout }
}

// NewS3Storage returns storage that uploads QR images to cfg.Bucket.
// Bucket and region are required.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", ErrInvalidConfig)
	}

	var o s3Options
	for _, opt := range opts {
		opt(&o)
	}

	client := o.client
	if client == nil {
		var err error
		if client, err = dialS3(ctx, cfg, o); err != nil {
			return nil, err
		}
	}

	return &S3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		baseURL:       publicBaseURL(cfg),
		uploadTimeout: o.uploadTimeout,
	}, nil
}

func dialS3(ctx context.Context, cfg S3Config, o s3Options) (*s3.Client, error) {
	load := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")
		load = append(load, config.WithCredentialsProvider(creds))
	}
	if o.httpClient != nil {
		load = append(load, config.WithHTTPClient(o.httpClient))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, append(load, o.loadOptions...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
	}

	return s3.NewFromConfig(awsCfg, func(so *s3.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle
		for _, fn := range o.clientOptions {
			fn(so)
		}
	}), nil
}

// publicBaseURL returns the prefix for image URLs, always ending in a slash.
func publicBaseURL(cfg S3Config) string {
	base := cfg.BaseURL
	switch {
	case base != "":
	case cfg.Endpoint != "":
		base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// s3CodeErrors maps S3 API error codes onto package errors.
var s3CodeErrors = map[string]error{
	"NoSuchKey":          ErrObjectNotFound,
	"NotFound":           ErrObjectNotFound,
	"NoSuchBucket":       ErrBucketNotFound,
	"AccessDenied":       ErrAccessDenied,
	"RequestTimeout":     ErrRequestTimeout,
	"SlowDown":           ErrServiceUnavailable,
	"ServiceUnavailable": ErrServiceUnavailable,
}

// classifyS3Error wraps err with the package error matching its cause.
// op names the failed step, e.g. "upload object".
func classifyS3Error(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", ErrOperationTimeout, op)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", ErrOperationCanceled, op)
	}

	var (
		noKey    *types.NoSuchKey
		notFound *types.NotFound
		noBucket *types.NoSuchBucket
		apiErr   smithy.APIError
	)
	switch {
	case errors.As(err, &noKey), errors.As(err, &notFound):
		return fmt.Errorf("%w: %s: %v", ErrObjectNotFound, op, err)
	case errors.As(err, &noBucket):
		return fmt.Errorf("%w: %s", ErrBucketNotFound, op)
	case errors.As(err, &apiErr):
		if target, ok := s3CodeErrors[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: %s: %v", target, op, err)
		}
		return fmt.Errorf("%s failed (code %s): %w", op, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

// cleanKey turns a storage path into an object key. Empty keys and parent
// references are rejected.
func cleanKey(path string) (string, error) {
	key := strings.TrimPrefix(path, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return key, nil
}

// Put uploads a QR image under path. An empty contentType is stored as
// application/octet-stream.
func (s *S3Storage) Put(ctx context.Context, path string, data []byte, contentType string) (*Object, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	key, err := cleanKey(path)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, classifyS3Error(err, "upload object")
	}

	return &Object{
		Path:        key,
		Size:        int64(len(data)),
		ContentType: contentType,
		Location:    fmt.Sprintf("s3://%s/%s", s.bucket, key),
	}, nil
}

// Delete retires an image, failing with ErrObjectNotFound if it was never
// uploaded.
func (s *S3Storage) Delete(ctx context.Context, path string) error {
	key, err := cleanKey(path)
	if err != nil {
		return err
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyS3Error(err, "check object")
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyS3Error(err, "delete object")
	}
	return nil
}

// Exists reports whether an image is stored under path. Lookup errors count as absent.
func (s *S3Storage) Exists(ctx context.Context, path string) bool {
	key, err := cleanKey(path)
	if err != nil {
		return false
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// URL returns the address a scanner or browser uses to fetch the image.
func (s *S3Storage) URL(path string) string {
	return s.baseURL + strings.TrimPrefix(path, "/")
}
