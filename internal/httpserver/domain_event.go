package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "calendar-nlu-service/internal/event/delivery/http"
	eventUC "calendar-nlu-service/internal/event/usecase"
	"calendar-nlu-service/internal/middleware"
)

// setupEventDomain initializes the event domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := eventUC.New(srv.l, srv.extractor, srv.calendar, srv.timezone, srv.calendarID)

	// 2. HTTP Handler
	h := eventHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/events/extract and /api/v1/events/schedule
	eventHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Event domain registered with extractor %q", srv.extractor.Name())
	return nil
}
