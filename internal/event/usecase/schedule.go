package usecase

import (
	"context"
	"errors"
	"fmt"

	"calendar-nlu-service/internal/event"
	"calendar-nlu-service/internal/model"
	"calendar-nlu-service/pkg/gcalendar"
)

// Schedule extracts and maps the utterance, then inserts the mapped body
// into Google Calendar when possible. Extraction and mapping results are
// returned even when the insert is skipped or fails.
func (uc *implUseCase) Schedule(ctx context.Context, input event.ScheduleInput) (event.ScheduleOutput, error) {
	extracted, err := uc.Extract(ctx, event.ExtractInput{Utterance: input.Utterance})
	if err != nil {
		return event.ScheduleOutput{}, err
	}

	out := event.ScheduleOutput{
		Slots:   extracted.Slots,
		Event:   extracted.Event,
		Missing: extracted.Missing,
	}

	if !uc.insertable(extracted) {
		return out, nil
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}

	created, err := uc.calendar.InsertEvent(ctx, toInsertRequest(calendarID, extracted.Event))
	if err != nil {
		if errors.Is(err, gcalendar.ErrDuplicateEvent) {
			uc.l.Warnf(ctx, "Schedule: duplicate insert suppressed for %q", extracted.Event.Summary)
			return out, nil
		}
		uc.l.Errorf(ctx, "Schedule: calendar insert failed: %v", err)
		return out, fmt.Errorf("%w: %v", event.ErrCalendarInsert, err)
	}

	uc.l.Infof(ctx, "Schedule: created event id=%s", created.ID)
	out.Created = &event.CreatedEvent{ID: created.ID, HTMLLink: created.HtmlLink}
	return out, nil
}

// insertable reports whether the extraction produced something worth
// inserting: a configured client, a CreateEvent intent, and both start and
// end resolved.
func (uc *implUseCase) insertable(extracted event.ExtractOutput) bool {
	return uc.calendar != nil &&
		extracted.Slots.Intent == model.IntentCreateEvent &&
		extracted.Event.Start != nil &&
		extracted.Event.End != nil
}

// toInsertRequest reshapes the mapped event body into the calendar client's
// insert request.
func toInsertRequest(calendarID string, body model.EventBody) gcalendar.InsertEventRequest {
	req := gcalendar.InsertEventRequest{
		CalendarID: calendarID,
		Summary:    body.Summary,
		Location:   body.Location,
		Recurrence: body.Recurrence,
	}
	if body.Start != nil {
		req.Start = &gcalendar.EventDateTime{DateTime: body.Start.DateTime, TimeZone: body.Start.TimeZone}
	}
	if body.End != nil {
		req.End = &gcalendar.EventDateTime{DateTime: body.End.DateTime, TimeZone: body.End.TimeZone}
	}
	for _, a := range body.Attendees {
		req.Attendees = append(req.Attendees, a.Email)
	}
	if body.Reminders != nil {
		for _, r := range body.Reminders.Overrides {
			req.ReminderOverrides = append(req.ReminderOverrides, gcalendar.ReminderOverride{
				Method:  string(r.Method),
				Minutes: int64(r.Minutes),
			})
		}
	}
	return req
}
