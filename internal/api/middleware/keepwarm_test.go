package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestKeepWarm_ShortCircuitsPing(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/predict", nil)
	req.Header.Set(EventDetailTypeHeader, "SANDBOX-KeepWarmRule")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := KeepWarm(zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("business logic must not run for keep-warm pings")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Keep warm ping successful") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestKeepWarm_PassesRealTraffic(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/predict", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := KeepWarm(zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("real traffic must reach the next handler")
	}
}

func TestKeepWarm_IgnoresOtherEventTypes(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(EventDetailTypeHeader, "SomethingElse")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := KeepWarm(zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("non-keep-warm event types must pass through")
	}
}
