package event

import "calendar-nlu-service/internal/model"

// ExtractInput is the input for slot extraction.
type ExtractInput struct {
	Utterance string
}

// ExtractOutput carries the extraction result, the mapped provider body,
// and the advisory list of missing critical fields.
type ExtractOutput struct {
	Slots   model.SlotSet   `json:"slots"`
	Event   model.EventBody `json:"event"`
	Missing []string        `json:"missing,omitempty"`
}

// ScheduleInput is the input for extract-and-insert.
type ScheduleInput struct {
	Utterance  string
	CalendarID string // optional; the configured default is used when empty
}

// CreatedEvent identifies the calendar event produced by an insert.
type CreatedEvent struct {
	ID       string `json:"id"`
	HTMLLink string `json:"html_link,omitempty"`
}

// ScheduleOutput is ExtractOutput plus the insert result, when one happened.
type ScheduleOutput struct {
	Slots   model.SlotSet   `json:"slots"`
	Event   model.EventBody `json:"event"`
	Missing []string        `json:"missing,omitempty"`
	Created *CreatedEvent   `json:"created,omitempty"`
}
