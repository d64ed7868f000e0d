package domain

import "errors"

// Sentinel errors for the inference API. Service code wraps these with
// fmt.Errorf("%w: ...") so callers can match with errors.Is while the
// transport layer maps each one to a single HTTP status.
var (
	// ErrConfiguration means a required setting (model bucket, secret
	// reference) is missing. Fatal at startup.
	ErrConfiguration = errors.New("missing required configuration")

	// ErrSecretUnavailable means the signing secret could not be fetched.
	// Fatal at startup: the service must not come up without it.
	ErrSecretUnavailable = errors.New("signing secret unavailable")

	// ErrModelUnavailable means the predictor never loaded. Non-fatal at
	// startup; every predict call fails with it until the instance is
	// recycled.
	ErrModelUnavailable = errors.New("model is not available")

	// ErrBadCredentials covers any username/password mismatch. The caller
	// cannot tell which field was wrong.
	ErrBadCredentials = errors.New("bad username or password")

	// ErrInvalidToken covers malformed, mis-signed and expired tokens alike.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidInput covers unparsable and out-of-range prediction inputs.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPredictionInternal means the input was accepted but the predictor
	// itself failed.
	ErrPredictionInternal = errors.New("prediction failed")
)
