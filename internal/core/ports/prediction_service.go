package ports

// PredictionService validates a raw scalar input and runs it through the
// cached predictor.
type PredictionService interface {
	// Predict parses raw, checks it against the accepted input range and
	// returns the model output. Errors are domain.ErrModelUnavailable,
	// domain.ErrInvalidInput or domain.ErrPredictionInternal.
	Predict(raw string) ([]float64, error)
}
