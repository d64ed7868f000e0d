package domain

import (
	"encoding/json"
	"fmt"
)

// LinearModel is a fitted single-feature linear regression: one scalar in,
// one scalar out. The artifact is produced by the offline training step and
// exported as JSON; its origin is trusted, no signature is verified.
type LinearModel struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// UnmarshalModel deserializes a model artifact. It rejects artifacts that do
// not carry exactly one coefficient, since the serving contract is a
// single-feature model.
func UnmarshalModel(raw []byte) (*LinearModel, error) {
	var m LinearModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding model artifact: %w", err)
	}
	if len(m.Coefficients) != 1 {
		return nil, fmt.Errorf("model artifact has %d coefficients, want 1", len(m.Coefficients))
	}
	return &m, nil
}

// Predict evaluates the regression at x.
func (m *LinearModel) Predict(x float64) float64 {
	return m.Intercept + m.Coefficients[0]*x
}
