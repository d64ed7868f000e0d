package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/grademl/inference-api/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=SANDBOX"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretRef is the Secrets Manager reference (ARN or name) of the JWT
	// signing secret, populated on deployment.
	SecretRef string `env:"SECRET_API_KEY"`

	Model ModelConfig
	AWS   AWSConfig
}

type ModelConfig struct {
	Bucket string `env:"MODEL_STORAGE_BUCKET"`
	Key    string `env:"MODEL_KEY, default=linear_regression_model.json"`
}

type AWSConfig struct {
	Region string `env:"AWS_REGION"`

	// Optional overrides for local development against MinIO.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
}

// Load reads configuration from environment variables using go-envconfig and
// validates the settings the service cannot start without.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.SecretRef == "" {
		return nil, fmt.Errorf("%w: SECRET_API_KEY is not set", domain.ErrConfiguration)
	}
	if cfg.Model.Bucket == "" {
		return nil, fmt.Errorf("%w: MODEL_STORAGE_BUCKET is not set", domain.ErrConfiguration)
	}
	return &cfg, nil
}
