package gcalendar_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"calendar-nlu-service/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newFakeClient(t *testing.T, handler http.Handler) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	// Constructing fake credentials for local parsing flows
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Insert Event E2E", func(t *testing.T) {
		client := newFakeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Sprint planning",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))

		created, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{
			CalendarID: "primary",
			Summary:    "Sprint planning",
			Start:      &gcalendar.EventDateTime{DateTime: "2026-03-04T16:00:00-05:00", TimeZone: "America/New_York"},
			End:        &gcalendar.EventDateTime{DateTime: "2026-03-04T17:00:00-05:00", TimeZone: "America/New_York"},
			Attendees:  []string{"maya@example.com"},
		})
		if err != nil {
			t.Fatalf("failed to insert event: %v", err)
		}
		if created.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", created.HtmlLink)
		}
		if created.ID != "event-123" {
			t.Errorf("unexpected id: %s", created.ID)
		}
	})

	t.Run("Insert Event Error E2E", func(t *testing.T) {
		client := newFakeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{
			CalendarID: "primary",
			Summary:    "Doomed",
		})
		if err == nil {
			t.Fatalf("expected insert event error")
		}
	})

	t.Run("Duplicate Insert Suppressed", func(t *testing.T) {
		var inserts int32
		client := newFakeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&inserts, 1)
			w.Write([]byte(`{"id": "event-123", "status": "confirmed"}`))
		}))

		req := gcalendar.InsertEventRequest{
			CalendarID: "primary",
			Summary:    "Standup",
			Start:      &gcalendar.EventDateTime{DateTime: "2026-03-04T09:00:00-05:00"},
		}

		if _, err := client.InsertEvent(context.Background(), req); err != nil {
			t.Fatalf("first insert failed: %v", err)
		}

		_, err := client.InsertEvent(context.Background(), req)
		if !errors.Is(err, gcalendar.ErrDuplicateEvent) {
			t.Fatalf("expected ErrDuplicateEvent, got %v", err)
		}
		if got := atomic.LoadInt32(&inserts); got != 1 {
			t.Errorf("expected exactly 1 upstream insert, got %d", got)
		}

		// A different start is a different event.
		req.Start = &gcalendar.EventDateTime{DateTime: "2026-03-05T09:00:00-05:00"}
		if _, err := client.InsertEvent(context.Background(), req); err != nil {
			t.Fatalf("distinct insert failed: %v", err)
		}
	})
}
