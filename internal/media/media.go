// Package media turns stored object keys (employee photos, catalog images) into
// URLs clients can fetch. Serving the bytes is someone else's job.
package media

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-backoffice/internal/config"
)

type Resolver interface {
	URL(ctx context.Context, key string) string
}

// NewResolver presigns against S3 when a bucket is configured and falls back to
// MEDIA_BASE_URL + key otherwise.
func NewResolver(cfg config.MediaConfig, log *zap.Logger) (Resolver, error) {
	base := NewBaseURLResolver(cfg.BaseURL)
	if cfg.S3Bucket == "" {
		return base, nil
	}
	return NewS3Resolver(cfg, base, log)
}

// -------- Base URL --------

type BaseURLResolver struct {
	base string
}

func NewBaseURLResolver(base string) *BaseURLResolver {
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &BaseURLResolver{base: base}
}

func (r *BaseURLResolver) URL(_ context.Context, key string) string {
	if key == "" || isAbsolute(key) {
		return key
	}
	return r.base + strings.TrimPrefix(key, "/")
}

// -------- S3 --------

type S3Resolver struct {
	presign  *s3.PresignClient
	bucket   string
	ttl      time.Duration
	fallback Resolver
	log      *zap.Logger
}

func NewS3Resolver(cfg config.MediaConfig, fallback Resolver, log *zap.Logger) (*S3Resolver, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New("media bucket is required")
	}

	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{Region: region}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &S3Resolver{
		presign:  s3.NewPresignClient(s3.New(opts)),
		bucket:   cfg.S3Bucket,
		ttl:      ttl,
		fallback: fallback,
		log:      log.Named("media"),
	}, nil
}

func (r *S3Resolver) URL(ctx context.Context, key string) string {
	if key == "" || isAbsolute(key) {
		return key
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimPrefix(key, "/")),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		r.log.Warn("presign failed, using base url", zap.String("key", key), zap.Error(err))
		return r.fallback.URL(ctx, key)
	}
	return req.URL
}

func isAbsolute(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}
