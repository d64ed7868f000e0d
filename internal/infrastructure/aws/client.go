// Package aws provides the Secrets Manager and S3 implementations of the
// core provider ports. Each client performs exactly one read per process
// lifetime, at warm-context construction.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	appconfig "github.com/grademl/inference-api/internal/infrastructure/config"
)

// newClientConfig resolves the SDK configuration. Region and static
// credentials come from the default chain unless overridden, which keeps the
// same binary usable against real AWS and against a local MinIO endpoint.
func newClientConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
