package aws

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/grademl/inference-api/internal/infrastructure/config"
)

// S3ModelStore implements ports.ModelStore against an S3 bucket holding the
// serialized model artifact.
type S3ModelStore struct {
	client *s3.Client
	bucket string
	key    string
}

func NewS3ModelStore(ctx context.Context, cfg appconfig.AWSConfig, bucket, key string) (*S3ModelStore, error) {
	sdkCfg, err := newClientConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3ModelStore{client: client, bucket: bucket, key: key}, nil
}

// Fetch downloads the raw artifact bytes.
func (s *S3ModelStore) Fetch(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching model artifact s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact body: %w", err)
	}
	return raw, nil
}
