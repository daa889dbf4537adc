// Package ollama implements the free-text extraction strategy against a
// locally hosted model. The model has no structural output guarantee, so
// the response goes through JSON sanitizing, a placeholder-year date
// correction, and boundary validation; any failure degrades to a
// rule-based keyword matcher.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"calendar-nlu-service/internal/model"
	"calendar-nlu-service/internal/nlu"
	pkgLog "calendar-nlu-service/pkg/log"
	pkgOllama "calendar-nlu-service/pkg/ollama"
)

// Temperature keeps the local model's JSON output near-deterministic.
const Temperature = 0.1

// Config holds the extractor's dependencies.
type Config struct {
	Client   pkgOllama.IOllama
	Timezone string // IANA zone for date resolution and canned fallbacks
	Logger   pkgLog.Logger

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Extractor is the free-text extraction strategy.
type Extractor struct {
	client   pkgOllama.IOllama
	location *time.Location
	l        pkgLog.Logger
	now      func() time.Time
}

var _ nlu.Extractor = (*Extractor)(nil)

// New creates a free-text extractor.
func New(cfg Config) (*Extractor, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("ollama extractor: client is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("ollama extractor: logger is required")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ollama extractor: invalid timezone %q: %w", cfg.Timezone, err)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Extractor{
		client:   cfg.Client,
		location: loc,
		l:        cfg.Logger,
		now:      now,
	}, nil
}

// Name returns the strategy name.
func (e *Extractor) Name() string {
	return "ollama"
}

// Extract prompts the local model for slot-set JSON. Transport failures,
// timeouts, and undecodable output fall back to the keyword matcher;
// placeholder-year timestamps are corrected in place.
func (e *Extractor) Extract(ctx context.Context, utterance string) model.SlotSet {
	now := e.now().In(e.location)

	resp, err := e.client.Generate(ctx, &pkgOllama.GenerateRequest{
		System:      systemPrompt(now),
		Prompt:      userPrompt(now, utterance),
		Temperature: Temperature,
	})
	if err != nil {
		e.l.Warnf(ctx, "ollama extractor: model call failed, using keyword fallback: %v", err)
		return e.keywordSlots(utterance, now)
	}

	cleaned := sanitizeJSONResponse(resp.Response)

	var slots model.SlotSet
	if err := json.Unmarshal([]byte(cleaned), &slots); err != nil {
		e.l.Warnf(ctx, "ollama extractor: undecodable model output %q, using keyword fallback: %v", cleaned, err)
		return e.keywordSlots(utterance, now)
	}

	slots.Start = correctPlaceholderDate(slots.Start, now)
	slots.End = correctPlaceholderDate(slots.End, now)

	valid, ok := nlu.Sanitize(slots)
	if !ok {
		e.l.Warnf(ctx, "ollama extractor: unrecognized intent %q, using keyword fallback", slots.Intent)
		return e.keywordSlots(utterance, now)
	}
	return valid
}
