package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"calendar-nlu-service/config"
	_ "calendar-nlu-service/docs" // Swagger docs
	"calendar-nlu-service/internal/httpserver"
	"calendar-nlu-service/internal/nlu"
	nluOllama "calendar-nlu-service/internal/nlu/ollama"
	nluOpenAI "calendar-nlu-service/internal/nlu/openai"
	"calendar-nlu-service/pkg/gcalendar"
	pkgLog "calendar-nlu-service/pkg/log"
	pkgOllama "calendar-nlu-service/pkg/ollama"
	pkgOpenAI "calendar-nlu-service/pkg/openai"
)

// @title       Calendar NLU Service API
// @description Natural language to Google Calendar event extraction with pluggable LLM strategies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar NLU Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Extraction strategy: %s", cfg.NLU.Strategy)

	// 3. Extraction strategy
	var (
		extractor     nlu.Extractor
		backendPinger httpserver.BackendPinger
	)
	switch cfg.NLU.Strategy {
	case config.StrategyOpenAI:
		client, cErr := pkgOpenAI.New(pkgOpenAI.Config{
			APIKey:     cfg.OpenAI.APIKey,
			Project:    cfg.OpenAI.Project,
			Model:      cfg.OpenAI.Model,
			BaseURL:    cfg.OpenAI.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
		})
		if cErr != nil {
			logger.Error(ctx, "Failed to initialize OpenAI client: ", cErr)
			return
		}
		extractor, err = nluOpenAI.New(nluOpenAI.Config{
			Client:   client,
			Timezone: cfg.NLU.Timezone,
			Logger:   logger,
		})
	case config.StrategyOllama:
		client, cErr := pkgOllama.New(pkgOllama.Config{
			Host:    cfg.Ollama.Host,
			Model:   cfg.Ollama.Model,
			Timeout: cfg.Ollama.Timeout,
		})
		if cErr != nil {
			logger.Error(ctx, "Failed to initialize Ollama client: ", cErr)
			return
		}
		backendPinger = client
		extractor, err = nluOllama.New(nluOllama.Config{
			Client:   client,
			Timezone: cfg.NLU.Timezone,
			Logger:   logger,
		})
	}
	if err != nil {
		logger.Error(ctx, "Failed to initialize extractor: ", err)
		return
	}

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	srvCfg := httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Extractor:       extractor,
		Timezone:        cfg.NLU.Timezone,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		RateLimitPerMin: cfg.NLU.RateLimitPerMin,
		BackendPinger:   backendPinger,
	}
	if calendarClient != nil {
		srvCfg.Calendar = calendarClient
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
