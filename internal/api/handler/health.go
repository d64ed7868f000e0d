package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grademl/inference-api/internal/core/service"
)

// HealthHandler handles GET / and GET /health — liveness probe.
// Returns 200 immediately; never requires the secret or model to be warm.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is alive.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// ReadinessHandler handles GET /health/ready. It reports per-dependency
// status, but always answers 200: a nil model degrades the predict path
// only, and the instance must keep serving login traffic rather than be
// pulled from rotation.
type ReadinessHandler struct {
	warm *service.WarmContext
}

func NewReadinessHandler(warm *service.WarmContext) *ReadinessHandler {
	return &ReadinessHandler{warm: warm}
}

type dependencyStatus struct {
	Status string `json:"status"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness reports warm-context status.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	deps := map[string]dependencyStatus{
		// Reaching this handler proves the secret warmed: a secret failure
		// is fatal at startup.
		"signing_secret": {Status: "ok"},
	}

	status := "ok"
	if h.warm.ModelLoaded() {
		deps["model"] = dependencyStatus{Status: "ok"}
	} else {
		deps["model"] = dependencyStatus{Status: "unavailable"}
		status = "degraded"
	}

	return c.JSON(http.StatusOK, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
