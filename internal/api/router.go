// Package api exposes the locator over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/locus/internal/metrics"
	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Locator resolves three range measurements to a position.
type Locator interface {
	Locate(ctx context.Context, measurements []models.Measurement, inMiles bool) (*models.Coordinates, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the HTTP routes.
type Handler struct {
	log          *slog.Logger
	locator      Locator
	pinger       Pinger // nil when no catalog is configured
	defaultMiles bool   // unit used when a request does not name one
}

// NewHandler creates a Handler. pinger may be nil.
func NewHandler(log *slog.Logger, locator Locator, pinger Pinger, defaultMiles bool) *Handler {
	return &Handler{
		log:          log,
		locator:      locator,
		pinger:       pinger,
		defaultMiles: defaultMiles,
	}
}

// NewRouter wires the routes, the request counter and the metrics endpoint.
func NewRouter(h *Handler, gatherer prometheus.Gatherer, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), countRequests(m))

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	v1.POST("/locate", h.Locate)

	return router
}

// Health answers OK, or 503 when the catalog cannot be reached.
func (h *Handler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	h.log.DebugContext(ctx, "Performing health checks...")

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			h.log.ErrorContext(ctx, "Health check failed", "error", err)
			c.String(http.StatusServiceUnavailable, "DB ping failed")
			return
		}
	}

	c.String(http.StatusOK, "OK")
}

func countRequests(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
