package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/awaleed99/bite-back0/internal/config"
)

var ErrNotConfigured = errors.New("object storage not configured")

// Uploader stores a public object and returns the URL it is served from.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg config.S3Config) *S3Storage {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		// MinIO and other S3-compatible servers
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Storage{
		client:    s3.New(opts),
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}

type disabled struct{}

func (disabled) Upload(context.Context, string, string, []byte) (string, error) {
	return "", ErrNotConfigured
}

// New returns S3 storage when a bucket is configured and a stub that rejects
// every upload otherwise.
func New(cfg config.S3Config) Uploader {
	if !cfg.Enabled() {
		return disabled{}
	}
	return NewS3Storage(cfg)
}
