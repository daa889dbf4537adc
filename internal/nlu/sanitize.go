package nlu

import (
	"strings"
	"time"

	"calendar-nlu-service/internal/model"
)

// Fallback is the inert slot set returned when no actionable slot could be
// extracted. QueryFreeTime carries no side effects downstream.
func Fallback() model.SlotSet {
	return model.SlotSet{Intent: model.IntentQueryFreeTime}
}

// Sanitize validates a model-produced slot set at the extractor boundary.
// Timestamps without an explicit UTC offset, unknown reminder methods, blank
// attendees, and negative durations are dropped rather than passed
// downstream. ok is false when the intent itself is missing or unrecognized,
// in which case the caller must fall back.
func Sanitize(slots model.SlotSet) (model.SlotSet, bool) {
	if !slots.Intent.Valid() {
		return model.SlotSet{}, false
	}

	if !offsetQualified(slots.Start) {
		slots.Start = ""
	}
	if !offsetQualified(slots.End) {
		slots.End = ""
	}

	if slots.DurationMinutes < 0 {
		slots.DurationMinutes = 0
	}

	if len(slots.Attendees) > 0 {
		attendees := make([]string, 0, len(slots.Attendees))
		for _, a := range slots.Attendees {
			if a = strings.TrimSpace(a); a != "" {
				attendees = append(attendees, a)
			}
		}
		slots.Attendees = attendees
	}

	if len(slots.Reminders) > 0 {
		reminders := make([]model.Reminder, 0, len(slots.Reminders))
		for _, r := range slots.Reminders {
			if r.Method.Valid() && r.Minutes >= 0 {
				reminders = append(reminders, r)
			}
		}
		slots.Reminders = reminders
	}

	return slots, true
}

// offsetQualified reports whether ts is empty or parses as RFC3339, which
// always carries an explicit offset ("Z" or ±hh:mm). Bare wall-clock
// strings fail this check.
func offsetQualified(ts string) bool {
	if ts == "" {
		return true
	}
	_, err := time.Parse(time.RFC3339, ts)
	return err == nil
}
