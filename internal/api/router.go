package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/grademl/inference-api/docs"
	"github.com/grademl/inference-api/internal/api/handler"
	"github.com/grademl/inference-api/internal/api/middleware"
	"github.com/grademl/inference-api/internal/core/ports"
	"github.com/grademl/inference-api/internal/core/service"
)

// The prometheus middleware registers its collectors on the default
// registry; build it once so repeated router construction cannot
// double-register.
var promMiddleware = echoprometheus.NewMiddleware("inference")

// NewRouter builds the Echo instance for the long-running server topology.
// The function topology shares the same token/prediction services through
// internal/lambda.
func NewRouter(tokens ports.TokenService, predictions ports.PredictionService, warm *service.WarmContext, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	// KeepWarm runs first: scheduled pings must short-circuit before any
	// logging, metrics or auth sees them.
	e.Use(middleware.KeepWarm(log))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(promMiddleware)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(tokens)
	predictHandler := handler.NewPredictHandler(predictions)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(warm)

	// --- Routes ---
	e.POST("/login", authHandler.Login)
	e.GET("/predict", predictHandler.Predict, middleware.Auth(tokens))

	// --- Health probes (no auth required) ---
	e.GET("/", healthHandler.Liveness)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
