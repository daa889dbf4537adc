package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-nlu-service/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-nlu-service"

	backendPingTimeout = 2 * time.Second
)

// healthCheck handles health check requests. When a local inference
// backend is configured, its reachability is reported alongside.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	body := gin.H{
		"status":    "healthy",
		"version":   HealthVersion,
		"service":   ServiceName,
		"extractor": srv.extractor.Name(),
	}

	if srv.backendPinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), backendPingTimeout)
		defer cancel()
		if err := srv.backendPinger.Heartbeat(ctx); err != nil {
			srv.l.Warnf(c.Request.Context(), "inference backend unreachable: %v", err)
			body["status"] = "degraded"
			body["backend"] = "unreachable"
		} else {
			body["backend"] = "reachable"
		}
	}

	response.OK(c, body)
}

// readyCheck handles readiness check requests.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
