package usecase

import (
	"context"

	"calendar-nlu-service/internal/nlu"
	"calendar-nlu-service/pkg/gcalendar"
	pkgLog "calendar-nlu-service/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client the usecase
// needs; *gcalendar.Client satisfies it, tests substitute a fake.
type CalendarClient interface {
	InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.InsertedEvent, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	extractor nlu.Extractor
	calendar  CalendarClient // nil when no credentials are configured
	timezone  string         // default IANA zone for mapping
	calendarID string
}

// New creates a new event UseCase instance. calendar may be nil; Schedule
// then behaves like Extract.
func New(
	l pkgLog.Logger,
	extractor nlu.Extractor,
	calendar CalendarClient,
	timezone string,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		extractor:  extractor,
		calendar:   calendar,
		timezone:   timezone,
		calendarID: calendarID,
	}
}
