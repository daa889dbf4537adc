package openai_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"calendar-nlu-service/internal/model"
	nluOpenAI "calendar-nlu-service/internal/nlu/openai"
	pkgOpenAI "calendar-nlu-service/pkg/openai"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func toolCallBody(arguments string) string {
	raw, _ := json.Marshal(arguments)
	return fmt.Sprintf(`{
		"choices": [
			{
				"message": {
					"role": "assistant",
					"tool_calls": [
						{
							"id": "call_1",
							"type": "function",
							"function": {"name": "extract_event", "arguments": %s}
						}
					]
				},
				"finish_reason": "tool_calls"
			}
		],
		"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
	}`, raw)
}

func newExtractor(t *testing.T, baseURL string) *nluOpenAI.Extractor {
	t.Helper()

	client, err := pkgOpenAI.New(pkgOpenAI.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
	})
	if err != nil {
		t.Fatalf("client init: %v", err)
	}

	reference := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	ext, err := nluOpenAI.New(nluOpenAI.Config{
		Client:   client,
		Timezone: "America/New_York",
		Logger:   &mockLogger{},
		Now:      func() time.Time { return reference },
	})
	if err != nil {
		t.Fatalf("extractor init: %v", err)
	}
	return ext
}

func TestExtract(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		prompt := string(body)

		switch {
		case strings.Contains(prompt, "error_500"):
			w.WriteHeader(http.StatusInternalServerError)

		case strings.Contains(prompt, "error_args"):
			w.Write([]byte(toolCallBody(`not json at all`)))

		case strings.Contains(prompt, "error_no_call"):
			w.Write([]byte(`{
				"choices": [
					{"message": {"role": "assistant", "content": "I cannot help with that."}}
				]
			}`))

		case strings.Contains(prompt, "error_intent"):
			w.Write([]byte(toolCallBody(`{"intent": "RescheduleEverything"}`)))

		default:
			w.Write([]byte(toolCallBody(`{
				"intent": "CreateEvent",
				"title": "Sprint planning",
				"start": "2026-03-04T16:00:00-05:00",
				"end": "2026-03-04T17:00:00-05:00",
				"attendees": ["maya@example.com", "leo@example.com"]
			}`)))
		}
	}))
	defer ts.Close()

	ext := newExtractor(t, ts.URL)

	t.Run("Success Path", func(t *testing.T) {
		slots := ext.Extract(context.Background(), "sprint planning Wednesday 4pm with Maya and Leo")

		if slots.Intent != model.IntentCreateEvent {
			t.Fatalf("expected CreateEvent, got %s", slots.Intent)
		}
		if slots.Title != "Sprint planning" {
			t.Errorf("unexpected title %q", slots.Title)
		}
		if slots.Start != "2026-03-04T16:00:00-05:00" || slots.End != "2026-03-04T17:00:00-05:00" {
			t.Errorf("unexpected window %s .. %s", slots.Start, slots.End)
		}
		if len(slots.Attendees) != 2 || slots.Attendees[0] != "maya@example.com" {
			t.Errorf("unexpected attendees %v", slots.Attendees)
		}
	})

	t.Run("API Failure Path", func(t *testing.T) {
		slots := ext.Extract(context.Background(), "error_500")
		if slots.Intent != model.IntentQueryFreeTime {
			t.Errorf("expected inert fallback, got %+v", slots)
		}
	})

	t.Run("Undecodable Arguments Path", func(t *testing.T) {
		slots := ext.Extract(context.Background(), "error_args")
		if slots.Intent != model.IntentQueryFreeTime {
			t.Errorf("expected inert fallback, got %+v", slots)
		}
	})

	t.Run("No Tool Call Path", func(t *testing.T) {
		slots := ext.Extract(context.Background(), "error_no_call")
		if slots.Intent != model.IntentQueryFreeTime {
			t.Errorf("expected inert fallback, got %+v", slots)
		}
	})

	t.Run("Unknown Intent Path", func(t *testing.T) {
		slots := ext.Extract(context.Background(), "error_intent")
		if slots.Intent != model.IntentQueryFreeTime {
			t.Errorf("expected inert fallback, got %+v", slots)
		}
	})
}

func TestExtractRequestShape(t *testing.T) {
	var captured map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(toolCallBody(`{"intent": "QueryFreeTime"}`)))
	}))
	defer ts.Close()

	ext := newExtractor(t, ts.URL)
	ext.Extract(context.Background(), "am I free Friday afternoon?")

	if captured == nil {
		t.Fatal("no request captured")
	}

	messages, _ := captured["messages"].([]interface{})
	if len(messages) != 2 {
		t.Fatalf("expected system + user message, got %d", len(messages))
	}
	user, _ := messages[1].(map[string]interface{})
	content, _ := user["content"].(string)
	if !strings.Contains(content, "reference_time=2026-03-02T05:00:00-05:00") {
		t.Errorf("reference time not pinned to injected clock: %q", content)
	}
	if !strings.Contains(content, "timezone=America/New_York") {
		t.Errorf("timezone missing from prompt: %q", content)
	}

	if temp, ok := captured["temperature"].(float64); !ok || temp != 0 {
		t.Errorf("expected temperature 0 on the wire, got %v", captured["temperature"])
	}
	if _, ok := captured["tool_choice"]; !ok {
		t.Error("expected forced tool choice on the wire")
	}
}
