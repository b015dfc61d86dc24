package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-backoffice/internal/config"
)

func TestBaseURLResolver(t *testing.T) {
	r := NewBaseURLResolver("https://cdn.example.com/media")
	ctx := context.Background()

	assert.Equal(t, "https://cdn.example.com/media/services/cut.png", r.URL(ctx, "services/cut.png"))
	assert.Equal(t, "https://cdn.example.com/media/a.png", r.URL(ctx, "/a.png"))
	assert.Equal(t, "", r.URL(ctx, ""))
	assert.Equal(t, "https://elsewhere/x.png", r.URL(ctx, "https://elsewhere/x.png"))
}

func TestNewResolver_WithoutBucketUsesBaseURL(t *testing.T) {
	r, err := NewResolver(config.MediaConfig{BaseURL: "/media/"}, zap.NewNop())
	require.NoError(t, err)

	_, ok := r.(*BaseURLResolver)
	assert.True(t, ok)
	assert.Equal(t, "/media/news/1.jpg", r.URL(context.Background(), "news/1.jpg"))
}

func TestS3Resolver_Presigns(t *testing.T) {
	r, err := NewResolver(config.MediaConfig{
		BaseURL:    "/media/",
		S3Bucket:   "salon",
		S3Region:   "us-east-1",
		S3Endpoint: "http://localhost:9000",
		AccessKey:  "minio",
		SecretKey:  "minio-secret",
	}, zap.NewNop())
	require.NoError(t, err)

	url := r.URL(context.Background(), "employees/7.jpg")

	assert.Contains(t, url, "http://localhost:9000/salon/employees/7.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}
