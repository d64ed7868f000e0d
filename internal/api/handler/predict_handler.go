package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/grademl/inference-api/internal/api/metrics"
	"github.com/grademl/inference-api/internal/core/domain"
	"github.com/grademl/inference-api/internal/core/ports"
)

type PredictHandler struct {
	predictions ports.PredictionService
}

func NewPredictHandler(predictions ports.PredictionService) *PredictHandler {
	return &PredictHandler{predictions: predictions}
}

type predictionResponse struct {
	Prediction []float64 `json:"prediction"`
}

// Predict runs the regression on the "input" query parameter.
//
// @Summary      Predict
// @Tags         predict
// @Produce      json
// @Security     BearerAuth
// @Param        input  query     string  true  "Model input in [0.0, 4.0]"
// @Success      200    {object}  predictionResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Failure      503    {object}  map[string]string
// @Router       /predict [get]
func (h *PredictHandler) Predict(c echo.Context) error {
	start := time.Now()

	result, err := h.predictions.Predict(c.QueryParam("input"))
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(predictionOutcome(err)).Inc()
		return err
	}

	metrics.PredictionsTotal.WithLabelValues("success").Inc()
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, predictionResponse{Prediction: result})
}

func predictionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrModelUnavailable):
		return "model_unavailable"
	default:
		return "error"
	}
}
