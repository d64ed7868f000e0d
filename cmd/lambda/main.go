// Lambda is the function-per-request adapter: one function fronted by API
// Gateway, kept warm by a scheduled EventBridge rule, sharing the core token
// and prediction services with the server adapter.
//
// The warm context is built outside the handler so the one-time secret and
// model fetches happen at cold start and are reused across invocations.
package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/grademl/inference-api/internal/core/service"
	awsinfra "github.com/grademl/inference-api/internal/infrastructure/aws"
	"github.com/grademl/inference-api/internal/infrastructure/config"
	"github.com/grademl/inference-api/internal/lambda"
	"github.com/grademl/inference-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel})
	log = log.With().Str("env", cfg.Env).Logger()

	secrets, err := awsinfra.NewSecretsManagerProvider(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("building secrets manager client")
	}
	models, err := awsinfra.NewS3ModelStore(ctx, cfg.AWS, cfg.Model.Bucket, cfg.Model.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("building s3 model store")
	}

	warm, err := service.NewWarmContext(ctx, secrets, cfg.SecretRef, models, log)
	if err != nil {
		log.Fatal().Err(err).Msg("warm-up failed")
	}

	tokens := service.NewTokenService(warm.Secret, log)
	predictions := service.NewPredictionService(warm.Model, log)

	awslambda.Start(lambda.NewRouter(tokens, predictions, log).Handle)
}
