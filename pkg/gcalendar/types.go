package gcalendar

import "errors"

// ErrDuplicateEvent is returned when an identical (calendar, summary, start)
// insert was performed recently; retried requests hit this instead of
// creating a second event.
var ErrDuplicateEvent = errors.New("gcalendar: duplicate event")

// dedupeCacheSize bounds the recently-inserted key cache.
const dedupeCacheSize = 256

// EventDateTime pairs an RFC3339 timestamp with a timezone label.
type EventDateTime struct {
	DateTime string
	TimeZone string
}

// ReminderOverride is a single reminder attached to the event.
type ReminderOverride struct {
	Method  string // "popup" or "email"
	Minutes int64
}

// InsertEventRequest is the input for inserting a Google Calendar event.
// Optional fields left zero are omitted from the provider payload.
type InsertEventRequest struct {
	CalendarID        string // defaults to "primary"
	Summary           string
	Location          string
	Start             *EventDateTime
	End               *EventDateTime
	Attendees         []string // email addresses, order preserved
	Recurrence        []string // RRULE strings
	ReminderOverrides []ReminderOverride
}

// InsertedEvent is a simplified view of the created Google Calendar event.
type InsertedEvent struct {
	ID       string
	Summary  string
	HtmlLink string
	Status   string
}
