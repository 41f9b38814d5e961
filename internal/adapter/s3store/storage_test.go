package s3store

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/config/configs"
)

func newTestStorage(t *testing.T, public string) *Storage {
	t.Helper()
	s, err := New(context.Background(), configs.Storage{
		Bucket:          "assets",
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		UsePathStyle:    true,
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		PublicBaseURL:   public,
	})
	require.NoError(t, err)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s
}

func TestPresignGetCapsLifetime(t *testing.T) {
	s := newTestStorage(t, "")

	raw, expires, err := s.PresignGet(context.Background(), "creatives/ws/1/image.jpg", 30*24*time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/assets/creatives/ws/1/image.jpg", u.Path)
	assert.Equal(t, "604800", u.Query().Get("X-Amz-Expires"))
	assert.Equal(t, s.now().Add(MaxPresignTTL), expires)
}

func TestPresignGetPublicBase(t *testing.T) {
	s := newTestStorage(t, "https://cdn.example/")

	raw, expires, err := s.PresignGet(context.Background(), "creatives/ws/1/image.jpg", 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/creatives/ws/1/image.jpg", raw)
	assert.Equal(t, s.now().Add(30*24*time.Hour), expires)
}
