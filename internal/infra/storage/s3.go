package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client the uploader needs.
// Declared here so tests can substitute a fake.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores uploads in an S3-compatible bucket.
type S3Uploader struct {
	client  S3API
	bucket  string
	baseURL string // public URL prefix, e.g. a CDN or bucket website endpoint
	now     func() time.Time
}

// NewS3Uploader builds an uploader using the default AWS credential chain.
func NewS3Uploader(ctx context.Context, bucket, region, baseURL string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if region != "" {
		cfg.Region = region
	}
	return &S3Uploader{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
		now:     time.Now,
	}, nil
}

// NewS3UploaderWithClient builds an uploader around an existing client.
// Primarily used by tests.
func NewS3UploaderWithClient(client S3API, bucket, baseURL string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, baseURL: baseURL, now: time.Now}
}

func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := ObjectKey(u.now(), filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}
