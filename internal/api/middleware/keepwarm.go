package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/grademl/inference-api/internal/api/metrics"
)

// EventDetailTypeHeader carries the event-type marker set by the scheduled
// keep-warm trigger. It mirrors the EventBridge detail-type used on the
// function topology, so both adapters key off the same marker.
const EventDetailTypeHeader = "X-Event-Detail-Type"

// KeepWarmMarker identifies a scheduled keep-warm ping.
const KeepWarmMarker = "KeepWarmRule"

// KeepWarm short-circuits scheduled keep-warm pings before any
// authentication or business logic runs. Pings are answered with a trivial
// success, logged at info severity and counted separately from real traffic.
// Register this middleware first.
func KeepWarm(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			detailType := c.Request().Header.Get(EventDetailTypeHeader)
			if !strings.Contains(detailType, KeepWarmMarker) {
				return next(c)
			}

			log.Info().Msg("keep warm ping received; this is not an error")
			metrics.KeepWarmPingsTotal.Inc()
			return c.JSON(http.StatusOK, map[string]string{"message": "Keep warm ping successful"})
		}
	}
}
