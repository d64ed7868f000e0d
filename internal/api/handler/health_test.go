package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/grademl/inference-api/internal/core/domain"
	"github.com/grademl/inference-api/internal/core/service"
)

func TestHealthHandler_Liveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadinessHandler_ModelLoaded(t *testing.T) {
	e := echo.New()
	warm := &service.WarmContext{
		Secret: "s3cret",
		Model:  &domain.LinearModel{Coefficients: []float64{1.0}},
	}

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewReadinessHandler(warm).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status       string                       `json:"status"`
		Dependencies map[string]map[string]string `json:"dependencies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" || resp.Dependencies["model"]["status"] != "ok" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReadinessHandler_ModelMissingStays200(t *testing.T) {
	e := echo.New()
	warm := &service.WarmContext{Secret: "s3cret"}

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewReadinessHandler(warm).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Degraded, but the instance must stay in rotation for login traffic.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status       string                       `json:"status"`
		Dependencies map[string]map[string]string `json:"dependencies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["model"]["status"] != "unavailable" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
