package lambda

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/grademl/inference-api/internal/core/domain"
	"github.com/grademl/inference-api/internal/core/service"
)

type countingTokens struct {
	inner *service.TokenService
	calls int
}

func (c *countingTokens) Issue(username, password string) (string, error) {
	c.calls++
	return c.inner.Issue(username, password)
}

func (c *countingTokens) Validate(token string) (string, error) {
	c.calls++
	return c.inner.Validate(token)
}

type countingPredictions struct {
	inner *service.PredictionService
	calls int
}

func (c *countingPredictions) Predict(raw string) ([]float64, error) {
	c.calls++
	return c.inner.Predict(raw)
}

func newTestRouter() (*Router, *countingTokens, *countingPredictions) {
	log := zerolog.Nop()
	tokens := &countingTokens{inner: service.NewTokenService("s3cret", log)}
	predictions := &countingPredictions{
		inner: service.NewPredictionService(&domain.LinearModel{Coefficients: []float64{250.0}, Intercept: 1000.0}, log),
	}
	return NewRouter(tokens, predictions, log), tokens, predictions
}

func invoke(t *testing.T, r *Router, payload any) events.APIGatewayProxyResponse {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}
	resp, err := r.Handle(context.Background(), raw)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	return resp
}

func TestRouter_KeepWarmEvent(t *testing.T) {
	r, tokens, predictions := newTestRouter()

	resp := invoke(t, r, map[string]string{"detail-type": "SANDBOX-KeepWarmRule"})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, "Keep warm ping successful") {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
	if tokens.calls != 0 || predictions.calls != 0 {
		t.Fatalf("keep-warm must not touch the services (%d/%d calls)", tokens.calls, predictions.calls)
	}
}

func TestRouter_LoginPredictFlow(t *testing.T) {
	r, _, _ := newTestRouter()

	resp := invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/login",
		Body:       `{"username":"demo","password":"password"}`,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", resp.StatusCode, resp.Body)
	}
	var loginResp map[string]string
	if err := json.Unmarshal([]byte(resp.Body), &loginResp); err != nil {
		t.Fatalf("invalid login json: %v", err)
	}
	token := loginResp["access_token"]
	if token == "" {
		t.Fatalf("expected access_token in body")
	}

	resp = invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/predict",
		Headers:               map[string]string{"Authorization": "Bearer " + token},
		QueryStringParameters: map[string]string{"input": "3.0"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("predict: expected 200, got %d (%s)", resp.StatusCode, resp.Body)
	}
	var predictResp map[string][]float64
	if err := json.Unmarshal([]byte(resp.Body), &predictResp); err != nil {
		t.Fatalf("invalid predict json: %v", err)
	}
	if len(predictResp["prediction"]) != 1 || predictResp["prediction"][0] != 1750.0 {
		t.Fatalf("unexpected prediction: %+v", predictResp)
	}
}

func TestRouter_LoginBadCredentials(t *testing.T) {
	r, _, _ := newTestRouter()

	resp := invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/login",
		Body:       `{"username":"demo","password":"wrong"}`,
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRouter_PredictAuthFailures(t *testing.T) {
	r, _, predictions := newTestRouter()

	// No Authorization header.
	resp := invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/predict",
		QueryStringParameters: map[string]string{"input": "3.0"},
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", resp.StatusCode)
	}

	// Garbage token.
	resp = invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/predict",
		Headers:               map[string]string{"Authorization": "Bearer junk"},
		QueryStringParameters: map[string]string{"input": "3.0"},
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", resp.StatusCode)
	}

	if predictions.calls != 0 {
		t.Fatalf("prediction service must not run for unauthenticated requests")
	}
}

func TestRouter_PredictOutOfRange(t *testing.T) {
	r, _, _ := newTestRouter()

	login := invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/login",
		Body:       `{"username":"demo","password":"password"}`,
	})
	var loginResp map[string]string
	_ = json.Unmarshal([]byte(login.Body), &loginResp)

	resp := invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/predict",
		Headers:               map[string]string{"authorization": "Bearer " + loginResp["access_token"]},
		QueryStringParameters: map[string]string{"input": "5.0"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", resp.StatusCode, resp.Body)
	}
}

func TestRouter_NilModelAnswers503(t *testing.T) {
	log := zerolog.Nop()
	tokens := service.NewTokenService("s3cret", log)
	predictions := service.NewPredictionService(nil, log)
	r := NewRouter(tokens, predictions, log)

	token, err := tokens.Issue("demo", "password")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	resp := invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/predict",
		Headers:               map[string]string{"Authorization": "Bearer " + token},
		QueryStringParameters: map[string]string{"input": "3.0"},
	})
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	r, _, _ := newTestRouter()

	resp := invoke(t, r, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/nope",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRouter_HealthPath(t *testing.T) {
	r, _, _ := newTestRouter()

	for _, path := range []string{"/", "/health"} {
		resp := invoke(t, r, events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodGet,
			Path:       path,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}
