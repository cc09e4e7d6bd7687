package imagestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// s3Store implements Store on top of an S3 bucket with public objects.
type s3Store struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Store creates a new S3-backed image store.
func NewS3Store(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	// Load AWS configuration
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	// Create S3 client
	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 image store initialised")

	return &s3Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload stores the file under a fresh key and returns the object URL.
// The original filename only contributes its extension.
func (s *s3Store) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := ObjectKey(s.prefix, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	url := ObjectURL(s.bucket, s.region, key)

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Str("url", url).
		Msg("image uploaded successfully")

	return url, nil
}

// ObjectKey builds a collision-free object key, keeping the uploaded
// file's extension.
func ObjectKey(prefix, filename string) string {
	return prefix + uuid.NewString() + filepath.Ext(filename)
}

// ObjectURL builds the public URL of an object in a bucket.
func ObjectURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
