package model

// EventDateTime pairs an offset-qualified timestamp with a timezone label,
// matching the Google Calendar start/end sub-object shape.
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// EventAttendee is a single attendee entry in the event body.
type EventAttendee struct {
	Email string `json:"email"`
}

// EventReminders carries reminder overrides. UseDefault is always false when
// overrides are present.
type EventReminders struct {
	UseDefault bool       `json:"useDefault"`
	Overrides  []Reminder `json:"overrides"`
}

// EventBody is the calendar-provider event payload produced by the mapper.
// Fields whose value would be empty are omitted entirely; the serialized body
// never contains null placeholders.
type EventBody struct {
	Summary    string          `json:"summary"`
	Location   string          `json:"location,omitempty"`
	Start      *EventDateTime  `json:"start,omitempty"`
	End        *EventDateTime  `json:"end,omitempty"`
	Attendees  []EventAttendee `json:"attendees,omitempty"`
	Recurrence []string        `json:"recurrence,omitempty"`
	Reminders  *EventReminders `json:"reminders,omitempty"`
}
