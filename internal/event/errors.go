package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyUtterance = errors.New("utterance is empty")
	ErrCalendarInsert = errors.New("failed to insert calendar event")
)
