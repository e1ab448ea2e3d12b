// internal/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/carbonwise/carbonwise-backend/internal/config"
)

// S3ImageCache mirrors fetched product images in an S3 bucket so repeated
// lookups skip the external image server. Without AWS credentials it degrades
// to a no-op cache, which keeps local development credential-free.
type S3ImageCache struct {
	s3Client *s3.S3
	bucket   string
}

func NewS3ImageCache(cfg *config.Config) (*S3ImageCache, error) {
	if cfg.AWS.AccessKeyID == "" {
		// No-op cache for local development
		return &S3ImageCache{}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3ImageCache{
		s3Client: s3.New(sess),
		bucket:   cfg.AWS.S3Bucket,
	}, nil
}

// Get returns the cached image bytes for key, or (nil, nil) on a miss.
func (s *S3ImageCache) Get(ctx context.Context, key string) ([]byte, error) {
	if s.s3Client == nil {
		return nil, nil
	}

	out, err := s.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached image: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached image body: %w", err)
	}

	return data, nil
}

func (s *S3ImageCache) Put(ctx context.Context, key string, data []byte) error {
	if s.s3Client == nil {
		return nil
	}

	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("image/jpeg"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to cache image: %w", err)
	}

	return nil
}
