// Package s3store implements object storage for cached creative assets on
// S3 or any S3-compatible service.
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"adpulse/internal/config/configs"
)

// MaxPresignTTL is the longest lifetime S3 accepts for a signed URL.
const MaxPresignTTL = 7 * 24 * time.Hour

// Storage implements port.ObjectStorage.
type Storage struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	publicBase string
	now        func() time.Time
}

// New loads AWS configuration and returns a Storage for cfg.Bucket.
func New(ctx context.Context, cfg configs.Storage) (*Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &Storage{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
		now:        time.Now,
	}, nil
}

// Put uploads body under key, replacing any existing object.
func (s *Storage) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		CacheControl:  aws.String("public, max-age=86400"),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// PresignGet returns a read URL for key. With a public base URL the object
// URL is returned as is and stays valid for the full ttl; otherwise the
// signature lifetime is capped at MaxPresignTTL.
func (s *Storage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	if s.publicBase != "" {
		return s.publicBase + "/" + key, s.now().Add(ttl), nil
	}
	ttl = min(ttl, MaxPresignTTL)
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, s.now().Add(ttl), nil
}
