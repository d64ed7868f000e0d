package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/grademl/inference-api/internal/core/domain"
	appconfig "github.com/grademl/inference-api/internal/infrastructure/config"
)

// SecretsManagerProvider implements ports.SecretProvider against AWS Secrets
// Manager.
type SecretsManagerProvider struct {
	client *secretsmanager.Client
}

func NewSecretsManagerProvider(ctx context.Context, cfg appconfig.AWSConfig) (*SecretsManagerProvider, error) {
	sdkCfg, err := newClientConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return &SecretsManagerProvider{client: secretsmanager.NewFromConfig(sdkCfg)}, nil
}

// Fetch retrieves the secret string for secretRef. Any failure, including a
// present-but-empty secret, maps to domain.ErrSecretUnavailable.
func (p *SecretsManagerProvider) Fetch(ctx context.Context, secretRef string) (string, error) {
	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretRef),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSecretUnavailable, err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", fmt.Errorf("%w: secret string is missing in the secret response", domain.ErrSecretUnavailable)
	}
	return *out.SecretString, nil
}
