package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-nlu-service/internal/event/usecase"
	"calendar-nlu-service/internal/nlu"
	pkgLog "calendar-nlu-service/pkg/log"
)

// BackendPinger reports whether the local inference backend answers.
// The Ollama client satisfies it; hosted strategies leave it nil.
type BackendPinger interface {
	Heartbeat(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Event domain
	extractor  nlu.Extractor
	calendar   usecase.CalendarClient
	timezone   string
	calendarID string

	rateLimitPerMin int
	backendPinger   BackendPinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Event domain
	Extractor  nlu.Extractor
	Calendar   usecase.CalendarClient
	Timezone   string
	CalendarID string

	RateLimitPerMin int
	BackendPinger   BackendPinger
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		extractor:       cfg.Extractor,
		calendar:        cfg.Calendar,
		timezone:        cfg.Timezone,
		calendarID:      cfg.CalendarID,
		rateLimitPerMin: cfg.RateLimitPerMin,
		backendPinger:   cfg.BackendPinger,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractor == nil {
		return errors.New("extractor is required")
	}
	return nil
}
