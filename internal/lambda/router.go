// Package lambda adapts the core token and prediction services to the
// function-per-request topology: one handler fronted by API Gateway, kept
// warm by a scheduled EventBridge rule.
package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/grademl/inference-api/internal/api/metrics"
	"github.com/grademl/inference-api/internal/core/domain"
	"github.com/grademl/inference-api/internal/core/ports"
)

// KeepWarmMarker identifies the scheduled keep-warm EventBridge rule by its
// detail-type.
const KeepWarmMarker = "KeepWarmRule"

// Router dispatches raw Lambda payloads to the core services. It accepts
// json.RawMessage rather than a typed event so that the scheduled keep-warm
// event and API Gateway proxy requests can share one function.
type Router struct {
	tokens      ports.TokenService
	predictions ports.PredictionService
	log         zerolog.Logger
}

func NewRouter(tokens ports.TokenService, predictions ports.PredictionService, log zerolog.Logger) *Router {
	return &Router{tokens: tokens, predictions: predictions, log: log}
}

// Handle is the Lambda entry point. Keep-warm pings are detected before any
// authentication or business logic and answered with a trivial success.
func (r *Router) Handle(ctx context.Context, raw json.RawMessage) (events.APIGatewayProxyResponse, error) {
	var probe struct {
		DetailType string `json:"detail-type"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && strings.Contains(probe.DetailType, KeepWarmMarker) {
		r.log.Info().Msg("keep warm ping received; this is not an error")
		metrics.KeepWarmPingsTotal.Inc()
		return textResponse(http.StatusOK, "Keep warm ping successful"), nil
	}

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(http.StatusBadRequest, "invalid request"), nil
	}

	switch {
	case req.HTTPMethod == http.MethodPost && req.Path == "/login":
		return r.login(req), nil
	case req.HTTPMethod == http.MethodGet && req.Path == "/predict":
		return r.predict(req), nil
	case req.HTTPMethod == http.MethodGet && (req.Path == "/" || req.Path == "/health"):
		return jsonResponse(http.StatusOK, map[string]string{"status": "healthy"}), nil
	default:
		return errorResponse(http.StatusNotFound, "not found"), nil
	}
}

func (r *Router) login(req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return errorResponse(http.StatusBadRequest, "invalid payload")
	}

	token, err := r.tokens.Issue(body.Username, body.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return domainErrorResponse(err, r.log)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return jsonResponse(http.StatusOK, map[string]string{"access_token": token})
}

func (r *Router) predict(req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	token, ok := bearerToken(req.Headers)
	if !ok {
		return errorResponse(http.StatusUnauthorized, "missing or invalid authorization header")
	}
	subject, err := r.tokens.Validate(token)
	if err != nil {
		return domainErrorResponse(err, r.log)
	}
	r.log.Info().Str("subject", subject).Msg("token validated")

	result, err := r.predictions.Predict(req.QueryStringParameters["input"])
	if err != nil {
		return domainErrorResponse(err, r.log)
	}

	return jsonResponse(http.StatusOK, map[string][]float64{"prediction": result})
}

// bearerToken extracts the bearer token. API Gateway does not canonicalize
// header names, so both spellings are checked.
func bearerToken(headers map[string]string) (string, bool) {
	authHeader := headers["Authorization"]
	if authHeader == "" {
		authHeader = headers["authorization"]
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// domainErrorResponse is the single translation step from domain errors to
// proxy-response status codes, mirroring the HTTP adapter's error handler.
func domainErrorResponse(err error, log zerolog.Logger) events.APIGatewayProxyResponse {
	switch {
	case errors.Is(err, domain.ErrBadCredentials):
		return errorResponse(http.StatusUnauthorized, domain.ErrBadCredentials.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		return errorResponse(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return errorResponse(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrModelUnavailable):
		return errorResponse(http.StatusServiceUnavailable, "model is not available, initialization failed")
	default:
		log.Error().Err(err).Msg("unhandled error")
		return errorResponse(http.StatusInternalServerError, "an unexpected error occurred")
	}
}

func jsonResponse(status int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, "internal server error")
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func errorResponse(status int, msg string) events.APIGatewayProxyResponse {
	return jsonResponse(status, map[string]string{"error": msg})
}

func textResponse(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{StatusCode: status, Body: body}
}
