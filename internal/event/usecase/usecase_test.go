package usecase_test

import (
	"context"
	"errors"
	"testing"

	"calendar-nlu-service/internal/event"
	"calendar-nlu-service/internal/event/usecase"
	"calendar-nlu-service/internal/mapper"
	"calendar-nlu-service/internal/model"
	"calendar-nlu-service/pkg/gcalendar"
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

type mockExtractor struct {
	slots model.SlotSet
}

func (m *mockExtractor) Extract(ctx context.Context, utterance string) model.SlotSet {
	return m.slots
}

func (m *mockExtractor) Name() string { return "mock" }

type mockCalendar struct {
	err     error
	lastReq gcalendar.InsertEventRequest
	calls   int
}

func (m *mockCalendar) InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.InsertedEvent, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.InsertedEvent{ID: "event-123", HtmlLink: "https://calendar.google.com/event-uri", Status: "confirmed"}, nil
}

var completeSlots = model.SlotSet{
	Intent: model.IntentCreateEvent,
	Title:  "Sprint planning",
	Start:  "2026-03-04T16:00:00-05:00",
	End:    "2026-03-04T17:00:00-05:00",
}

func TestExtract(t *testing.T) {
	t.Run("Success Path", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: completeSlots}, nil, "America/New_York", "primary")

		out, err := uc.Extract(context.Background(), event.ExtractInput{Utterance: "sprint planning Wednesday 4pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Slots.Intent != model.IntentCreateEvent {
			t.Errorf("unexpected intent %s", out.Slots.Intent)
		}
		if out.Event.Summary != "Sprint planning" {
			t.Errorf("unexpected summary %q", out.Event.Summary)
		}
		if out.Missing != nil {
			t.Errorf("expected no missing fields, got %v", out.Missing)
		}
	})

	t.Run("Empty Utterance", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockExtractor{}, nil, "America/New_York", "primary")

		_, err := uc.Extract(context.Background(), event.ExtractInput{Utterance: "   "})
		if !errors.Is(err, event.ErrEmptyUtterance) {
			t.Errorf("expected ErrEmptyUtterance, got %v", err)
		}
	})

	t.Run("Missing Fields Advisory", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: model.SlotSet{Intent: model.IntentCreateEvent}}, nil, "America/New_York", "primary")

		out, err := uc.Extract(context.Background(), event.ExtractInput{Utterance: "schedule something"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Missing) != 3 {
			t.Errorf("expected title/start/end missing, got %v", out.Missing)
		}
		if out.Event.Summary != mapper.NoTitlePlaceholder {
			t.Errorf("expected placeholder summary, got %q", out.Event.Summary)
		}
	})
}

func TestSchedule(t *testing.T) {
	t.Run("Success Path", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: completeSlots}, cal, "America/New_York", "primary")

		out, err := uc.Schedule(context.Background(), event.ScheduleInput{Utterance: "sprint planning Wednesday 4pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created == nil || out.Created.ID != "event-123" {
			t.Fatalf("expected created event, got %+v", out.Created)
		}
		if cal.lastReq.CalendarID != "primary" {
			t.Errorf("expected configured calendar id, got %q", cal.lastReq.CalendarID)
		}
	})

	t.Run("Request Calendar ID Wins", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: completeSlots}, cal, "America/New_York", "primary")

		_, err := uc.Schedule(context.Background(), event.ScheduleInput{Utterance: "x meeting", CalendarID: "team@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.lastReq.CalendarID != "team@example.com" {
			t.Errorf("expected request calendar id, got %q", cal.lastReq.CalendarID)
		}
	})

	t.Run("No Calendar Configured", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: completeSlots}, nil, "America/New_York", "primary")

		out, err := uc.Schedule(context.Background(), event.ScheduleInput{Utterance: "sprint planning"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created != nil {
			t.Errorf("expected no created event, got %+v", out.Created)
		}
	})

	t.Run("Incomplete Event Not Inserted", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: model.SlotSet{Intent: model.IntentCreateEvent, Title: "Standup"}}, cal, "America/New_York", "primary")

		out, err := uc.Schedule(context.Background(), event.ScheduleInput{Utterance: "standup"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 0 {
			t.Errorf("expected no insert attempt, got %d", cal.calls)
		}
		if out.Created != nil {
			t.Errorf("expected no created event")
		}
	})

	t.Run("Non-Create Intent Not Inserted", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: model.SlotSet{Intent: model.IntentCancelEvent}}, cal, "America/New_York", "primary")

		if _, err := uc.Schedule(context.Background(), event.ScheduleInput{Utterance: "cancel my 1:1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 0 {
			t.Errorf("expected no insert attempt, got %d", cal.calls)
		}
	})

	t.Run("Insert Failure Keeps Pipeline Output", func(t *testing.T) {
		cal := &mockCalendar{err: errors.New("quota exceeded")}
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: completeSlots}, cal, "America/New_York", "primary")

		out, err := uc.Schedule(context.Background(), event.ScheduleInput{Utterance: "sprint planning"})
		if !errors.Is(err, event.ErrCalendarInsert) {
			t.Fatalf("expected ErrCalendarInsert, got %v", err)
		}
		if out.Event.Summary != "Sprint planning" {
			t.Errorf("expected pipeline output preserved, got %+v", out.Event)
		}
		if out.Created != nil {
			t.Errorf("expected no created event on failure")
		}
	})

	t.Run("Duplicate Insert Is Not An Error", func(t *testing.T) {
		cal := &mockCalendar{err: gcalendar.ErrDuplicateEvent}
		uc := usecase.New(&mockLogger{}, &mockExtractor{slots: completeSlots}, cal, "America/New_York", "primary")

		out, err := uc.Schedule(context.Background(), event.ScheduleInput{Utterance: "sprint planning"})
		if err != nil {
			t.Fatalf("expected duplicate to be swallowed, got %v", err)
		}
		if out.Created != nil {
			t.Errorf("expected no created event for duplicate")
		}
	})
}
