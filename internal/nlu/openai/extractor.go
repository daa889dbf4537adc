// Package openai implements the schema-constrained extraction strategy: one
// chat-completions request whose answer is forced into the extract_event
// tool schema.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"calendar-nlu-service/internal/model"
	"calendar-nlu-service/internal/nlu"
	pkgLog "calendar-nlu-service/pkg/log"
	pkgOpenAI "calendar-nlu-service/pkg/openai"
)

// Config holds the extractor's dependencies.
type Config struct {
	Client   pkgOpenAI.IOpenAI
	Timezone string // IANA zone used for the reference time
	Logger   pkgLog.Logger

	// Now overrides the clock; nil means time.Now. Tests use it to pin the
	// reference time.
	Now func() time.Time
}

// Extractor is the schema-constrained extraction strategy.
type Extractor struct {
	client   pkgOpenAI.IOpenAI
	location *time.Location
	timezone string
	l        pkgLog.Logger
	now      func() time.Time
}

var _ nlu.Extractor = (*Extractor)(nil)

// New creates a schema-constrained extractor.
func New(cfg Config) (*Extractor, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("openai extractor: client is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("openai extractor: logger is required")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("openai extractor: invalid timezone %q: %w", cfg.Timezone, err)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Extractor{
		client:   cfg.Client,
		location: loc,
		timezone: cfg.Timezone,
		l:        cfg.Logger,
		now:      now,
	}, nil
}

// Name returns the strategy name.
func (e *Extractor) Name() string {
	return "openai"
}

// Extract sends the utterance with the reference time and timezone to the
// model, forced to answer with one extract_event call. Transport errors,
// a missing tool call, or undecodable arguments all degrade to the inert
// QueryFreeTime slot set.
func (e *Extractor) Extract(ctx context.Context, utterance string) model.SlotSet {
	referenceTime := e.now().In(e.location).Format(time.RFC3339)

	req := &pkgOpenAI.Request{
		SystemInstruction: &pkgOpenAI.Content{
			Parts: []pkgOpenAI.Part{{Text: SystemInstruction}},
		},
		Messages: []pkgOpenAI.Content{
			{
				Role: "user",
				Parts: []pkgOpenAI.Part{{
					Text: fmt.Sprintf("reference_time=%s\ntimezone=%s\nutterance=%s",
						referenceTime, e.timezone, utterance),
				}},
			},
		},
		Tools: []pkgOpenAI.Tool{{
			Name:        ToolName,
			Description: ToolDescription,
			Parameters:  eventToolParameters(),
			Strict:      true,
		}},
		ForceTool:   ToolName,
		Temperature: 0,
	}

	resp, err := e.client.GenerateContent(ctx, req)
	if err != nil {
		e.l.Warnf(ctx, "openai extractor: model call failed, returning inert slots: %v", err)
		return nlu.Fallback()
	}

	args := e.toolCallArgs(resp)
	if args == nil {
		e.l.Warnf(ctx, "openai extractor: no usable %s call in response, returning inert slots", ToolName)
		return nlu.Fallback()
	}

	slots, err := decodeSlots(args)
	if err != nil {
		e.l.Warnf(ctx, "openai extractor: failed to decode tool arguments: %v", err)
		return nlu.Fallback()
	}

	clean, ok := nlu.Sanitize(slots)
	if !ok {
		e.l.Warnf(ctx, "openai extractor: model returned unrecognized intent %q", slots.Intent)
		return nlu.Fallback()
	}
	return clean
}

// toolCallArgs returns the arguments of the first extract_event call, or nil.
func (e *Extractor) toolCallArgs(resp *pkgOpenAI.Response) map[string]interface{} {
	for _, part := range resp.Content.Parts {
		if part.FunctionCall != nil && part.FunctionCall.Name == ToolName && part.FunctionCall.Args != nil {
			return part.FunctionCall.Args
		}
	}
	return nil
}

// decodeSlots converts loosely-typed tool arguments into a SlotSet via a
// JSON round trip so field types are checked rather than trusted.
func decodeSlots(args map[string]interface{}) (model.SlotSet, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return model.SlotSet{}, err
	}
	var slots model.SlotSet
	if err := json.Unmarshal(raw, &slots); err != nil {
		return model.SlotSet{}, err
	}
	return slots, nil
}
