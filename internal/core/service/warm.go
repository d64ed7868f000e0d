package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/grademl/inference-api/internal/core/domain"
	"github.com/grademl/inference-api/internal/core/ports"
)

// WarmContext holds the once-fetched, process-lifetime dependencies shared by
// the token and prediction services: the signing secret and the deserialized
// predictor. It is built exactly once at instance start; everything after
// warm-up reads the cached values only.
type WarmContext struct {
	Secret string
	Model  *domain.LinearModel
}

// NewWarmContext fetches the signing secret and the model artifact.
//
// A secret failure is fatal: the service must not come up in a state that
// silently treats authentication as always-failing. A model failure is not:
// it is logged and the predictor left nil, so the instance still serves
// login and health traffic while every predict call returns
// domain.ErrModelUnavailable.
func NewWarmContext(ctx context.Context, secrets ports.SecretProvider, secretRef string, models ports.ModelStore, log zerolog.Logger) (*WarmContext, error) {
	secret, err := secrets.Fetch(ctx, secretRef)
	if err != nil {
		return nil, fmt.Errorf("warming signing secret: %w", err)
	}
	if secret == "" {
		return nil, fmt.Errorf("warming signing secret: %w: empty value", domain.ErrSecretUnavailable)
	}
	// Never log the secret itself.
	log.Info().Int("secret_len", len(secret)).Msg("signing secret cached")

	w := &WarmContext{Secret: secret}

	raw, err := models.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load model; predictions will be unavailable")
		return w, nil
	}
	model, err := domain.UnmarshalModel(raw)
	if err != nil {
		log.Error().Err(err).Msg("failed to deserialize model; predictions will be unavailable")
		return w, nil
	}
	w.Model = model
	log.Info().Msg("model successfully loaded")
	return w, nil
}

// ModelLoaded reports whether the predictor warmed successfully.
func (w *WarmContext) ModelLoaded() bool {
	return w != nil && w.Model != nil
}
