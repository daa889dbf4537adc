package http

import (
	"github.com/gin-gonic/gin"

	"calendar-nlu-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/extract", mw.RateLimit(), h.Extract)
		events.POST("/schedule", mw.RateLimit(), h.Schedule)
	}
}
