// Server is the long-running adapter: a containerized Echo HTTP server
// sitting behind a load balancer, sharing the core token and prediction
// services with the Lambda adapter.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/grademl/inference-api/internal/api"
	"github.com/grademl/inference-api/internal/api/metrics"
	"github.com/grademl/inference-api/internal/core/service"
	awsinfra "github.com/grademl/inference-api/internal/infrastructure/aws"
	"github.com/grademl/inference-api/internal/infrastructure/config"
	"github.com/grademl/inference-api/pkg/logger"
)

// @title        Inference API
// @version      1.0
// @description  JWT-authenticated single-feature linear regression prediction API.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "SANDBOX",
	})
	log = log.With().Str("env", cfg.Env).Logger()

	secrets, err := awsinfra.NewSecretsManagerProvider(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("building secrets manager client")
	}
	models, err := awsinfra.NewS3ModelStore(ctx, cfg.AWS, cfg.Model.Bucket, cfg.Model.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("building s3 model store")
	}

	// Fetch-once warm-up. A secret failure is fatal; a model failure leaves
	// the predict path degraded but the process up.
	warm, err := service.NewWarmContext(ctx, secrets, cfg.SecretRef, models, log)
	if err != nil {
		log.Fatal().Err(err).Msg("warm-up failed")
	}
	if warm.ModelLoaded() {
		metrics.ModelLoaded.Set(1)
	} else {
		metrics.ModelLoaded.Set(0)
	}

	tokens := service.NewTokenService(warm.Secret, log)
	predictions := service.NewPredictionService(warm.Model, log)

	e := api.NewRouter(tokens, predictions, warm, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	stopCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
