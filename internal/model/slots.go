package model

// Intent is one of the recognized calendar operations.
type Intent string

const (
	IntentCreateEvent   Intent = "CreateEvent"
	IntentMoveEvent     Intent = "MoveEvent"
	IntentCancelEvent   Intent = "CancelEvent"
	IntentAddInvitees   Intent = "AddInvitees"
	IntentQueryFreeTime Intent = "QueryFreeTime"
)

// Valid reports whether the intent is one of the recognized values.
func (i Intent) Valid() bool {
	switch i {
	case IntentCreateEvent, IntentMoveEvent, IntentCancelEvent, IntentAddInvitees, IntentQueryFreeTime:
		return true
	}
	return false
}

// ReminderMethod is how a reminder is delivered.
type ReminderMethod string

const (
	ReminderPopup ReminderMethod = "popup"
	ReminderEmail ReminderMethod = "email"
)

// Valid reports whether the method is one of the recognized values.
func (m ReminderMethod) Valid() bool {
	return m == ReminderPopup || m == ReminderEmail
}

// Reminder is a single reminder override extracted from the utterance.
type Reminder struct {
	Method  ReminderMethod `json:"method"`
	Minutes int            `json:"minutes"`
}

// SlotSet is the structured result of NLU extraction. All fields except
// Intent are optional. Start and End, when present, are RFC3339 timestamps
// carrying an explicit UTC offset — bare wall-clock strings are rejected at
// the extractor boundary and never reach the mapper.
type SlotSet struct {
	Intent          Intent     `json:"intent"`
	Title           string     `json:"title,omitempty"`
	Start           string     `json:"start,omitempty"`
	End             string     `json:"end,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Timezone        string     `json:"timezone,omitempty"`
	Location        string     `json:"location,omitempty"`
	Attendees       []string   `json:"attendees,omitempty"`
	Recurrence      string     `json:"recurrence,omitempty"`
	Reminders       []Reminder `json:"reminders,omitempty"`
}
