// Package metrics defines and registers all custom Prometheus metrics for
// the inference API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inference"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PredictionsTotal counts prediction requests that reached the prediction
// service (keep-warm pings and auth rejections are excluded).
// Label:
//   - outcome: "success", "invalid_input", "model_unavailable" or "error"
var PredictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of prediction requests, by outcome.",
	},
	[]string{"outcome"},
)

// PredictionDuration measures predictor latency for successful predictions.
var PredictionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of successful prediction calls.",
		Buckets:   prometheus.DefBuckets,
	},
)

// KeepWarmPingsTotal counts scheduled keep-warm pings. These are synthetic
// requests and must never appear in the real-traffic counters above.
var KeepWarmPingsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keepwarm_pings_total",
		Help:      "Total number of scheduled keep-warm pings answered.",
	},
)

// ModelLoaded reports whether the predictor warmed successfully (1) or the
// instance is serving login/health traffic only (0).
var ModelLoaded = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_loaded",
		Help:      "Whether the regression model loaded at startup (1) or not (0).",
	},
)
