package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/grademl/inference-api/internal/core/domain"
)

// Accepted input range for the single model feature, inclusive on both ends.
const (
	inputMin = 0.0
	inputMax = 4.0
)

// PredictionService runs validated scalar inputs through the cached
// predictor. A nil model means the artifact never loaded; the service then
// rejects every request rather than crashing.
type PredictionService struct {
	model *domain.LinearModel
	log   zerolog.Logger
}

func NewPredictionService(model *domain.LinearModel, log zerolog.Logger) *PredictionService {
	return &PredictionService{model: model, log: log}
}

// Predict parses raw as a real number, checks it lies in [inputMin, inputMax]
// and returns the model output as a one-element slice.
func (s *PredictionService) Predict(raw string) (result []float64, err error) {
	if s.model == nil {
		return nil, domain.ErrModelUnavailable
	}

	x, perr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if perr != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInput, raw)
	}
	if math.IsNaN(x) || x < inputMin || x > inputMax {
		return nil, fmt.Errorf("%w: %v is outside [%v, %v]", domain.ErrInvalidInput, x, inputMin, inputMax)
	}

	// The predictor is a pure local computation, but an artifact with
	// unexpected shape could still blow up. Report that as an internal
	// failure, distinct from input rejection.
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Float64("input", x).Msg("predictor invocation panicked")
			result = nil
			err = domain.ErrPredictionInternal
		}
	}()

	return []float64{s.model.Predict(x)}, nil
}
