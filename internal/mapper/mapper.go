// Package mapper deterministically transforms an extracted slot set into a
// Google Calendar event body. It performs no network or model calls and is
// total over its input domain.
package mapper

import (
	"time"

	"calendar-nlu-service/internal/model"
)

// NoTitlePlaceholder is the summary used when the utterance carried no title.
const NoTitlePlaceholder = "(No title)"

// ToEventBody maps a slot set into a calendar event body. A missing end is
// derived from start + duration_minutes when both are present. An
// unparseable start leaves end unset so the caller can prompt for it.
func ToEventBody(slots model.SlotSet, defaultTimezone string) model.EventBody {
	tz := slots.Timezone
	if tz == "" {
		tz = defaultTimezone
	}

	start := slots.Start
	end := slots.End

	if start != "" && end == "" && slots.DurationMinutes > 0 {
		if startTime, err := time.Parse(time.RFC3339, start); err == nil {
			end = startTime.Add(time.Duration(slots.DurationMinutes) * time.Minute).Format(time.RFC3339)
		}
	}

	body := model.EventBody{
		Summary: slots.Title,
	}
	if body.Summary == "" {
		body.Summary = NoTitlePlaceholder
	}

	if start != "" {
		body.Start = &model.EventDateTime{DateTime: start, TimeZone: tz}
	}
	if end != "" {
		body.End = &model.EventDateTime{DateTime: end, TimeZone: tz}
	}

	if slots.Location != "" {
		body.Location = slots.Location
	}

	if len(slots.Attendees) > 0 {
		body.Attendees = make([]model.EventAttendee, 0, len(slots.Attendees))
		for _, a := range slots.Attendees {
			body.Attendees = append(body.Attendees, model.EventAttendee{Email: a})
		}
	}

	if slots.Recurrence != "" {
		body.Recurrence = []string{slots.Recurrence}
	}

	if len(slots.Reminders) > 0 {
		body.Reminders = &model.EventReminders{
			UseDefault: false,
			Overrides:  slots.Reminders,
		}
	}

	return body
}
